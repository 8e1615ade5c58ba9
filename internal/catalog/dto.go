package catalog

import "github.com/helpdeskhq/portal-core/pkg/validator"

type CreateModuleDTO struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (d CreateModuleDTO) Validate() error {
	return validator.Struct(d)
}

// UpdateModuleDTO is a field-level patch; nil fields are left untouched.
// The module ID is immutable and deliberately absent.
type UpdateModuleDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

type CreateGuideDTO struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	Steps       []string `json:"steps"`
}

func (d CreateGuideDTO) Validate() error {
	return validator.Struct(d)
}

type UpdateGuideDTO struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	VideoURL    *string   `json:"videoUrl,omitempty"`
	Steps       *[]string `json:"steps,omitempty"`
}
