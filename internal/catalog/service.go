package catalog

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/helpdeskhq/portal-core/internal"
)

// StoreKey names the persisted catalog record. The suffix is bumped whenever
// the stored shape changes so a stale payload reads as absent.
const StoreKey = "helpdesk_modules_v4"

// StoreAPI is the slice of the persistent store the catalog needs.
type StoreAPI interface {
	Load(key string, out any) (bool, error)
	Save(key string, value any) error
}

// Service owns the module tree. It is the single writer: every mutation
// replaces the whole slice copy-on-write and then persists synchronously.
// A persist failure is logged and swallowed; the in-memory state stays
// authoritative for the rest of the process lifetime.
type Service struct {
	store   StoreAPI
	logger  *slog.Logger
	modules []Module
}

func NewService(store StoreAPI, logger *slog.Logger) *Service {
	s := &Service{store: store, logger: logger}

	var loaded []Module
	ok, err := store.Load(StoreKey, &loaded)
	if err != nil {
		// a missing or unreadable cache must never block startup
		s.logger.Warn("discarding unreadable catalog record", "key", StoreKey, "error", err)
		ok = false
	}
	if ok {
		s.modules = loaded
	} else {
		s.modules = DefaultModules()
	}
	return s
}

// newID returns a time-ordered V7 UUID. V7 carries an in-process monotonic
// counter, so two IDs minted in the same clock tick never collide.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Service) persist() {
	if err := s.store.Save(StoreKey, s.modules); err != nil {
		s.logger.Warn("catalog persist failed; in-memory state remains authoritative",
			"key", StoreKey, "error", err)
	}
}

// ListModules returns a snapshot of the catalog in display order.
func (s *Service) ListModules() []Module {
	return cloneModules(s.modules)
}

func (s *Service) GetModule(id string) (*Module, error) {
	for i := range s.modules {
		if s.modules[i].ID == id {
			m := s.modules[i].Clone()
			return &m, nil
		}
	}
	return nil, internal.ErrModuleNotFound
}

func (s *Service) AddModule(dto CreateModuleDTO) (*Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	module := Module{
		ID:          newID(),
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Guides:      []Guide{},
	}

	next := append(cloneModules(s.modules), module)
	s.modules = next
	s.persist()

	s.logger.Info("module created", "module_id", module.ID, "title", module.Title)
	created := module.Clone()
	return &created, nil
}

func (s *Service) UpdateModule(id string, dto UpdateModuleDTO) error {
	next := cloneModules(s.modules)
	found := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		if dto.Title != nil {
			next[i].Title = *dto.Title
		}
		if dto.Description != nil {
			next[i].Description = *dto.Description
		}
		if dto.Icon != nil {
			next[i].Icon = *dto.Icon
		}
	}
	if !found {
		return internal.ErrModuleNotFound
	}

	s.modules = next
	s.persist()
	return nil
}

// DeleteModule removes the module and, with it, every guide it owns. Roles
// holding keys for the deleted content keep them verbatim as inert strings.
func (s *Service) DeleteModule(id string) error {
	next := make([]Module, 0, len(s.modules))
	found := false
	for _, m := range s.modules {
		if m.ID == id {
			found = true
			continue
		}
		next = append(next, m.Clone())
	}
	if !found {
		return internal.ErrModuleNotFound
	}

	s.modules = next
	s.persist()
	s.logger.Info("module deleted", "module_id", id)
	return nil
}

func (s *Service) AddGuide(moduleID string, dto CreateGuideDTO) (*Guide, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	guide := Guide{
		ID:          newID(),
		Title:       dto.Title,
		Description: dto.Description,
		VideoURL:    dto.VideoURL,
		Steps:       append([]string(nil), dto.Steps...),
	}

	next := cloneModules(s.modules)
	found := false
	for i := range next {
		if next[i].ID == moduleID {
			next[i].Guides = append(next[i].Guides, guide)
			found = true
		}
	}
	if !found {
		return nil, internal.ErrModuleNotFound
	}

	s.modules = next
	s.persist()

	s.logger.Info("guide created", "module_id", moduleID, "guide_id", guide.ID, "title", guide.Title)
	created := guide.Clone()
	return &created, nil
}

func (s *Service) UpdateGuide(moduleID, guideID string, dto UpdateGuideDTO) error {
	next := cloneModules(s.modules)
	found := false
	for i := range next {
		if next[i].ID != moduleID {
			continue
		}
		for j := range next[i].Guides {
			if next[i].Guides[j].ID != guideID {
				continue
			}
			found = true
			g := &next[i].Guides[j]
			if dto.Title != nil {
				g.Title = *dto.Title
			}
			if dto.Description != nil {
				g.Description = *dto.Description
			}
			if dto.VideoURL != nil {
				g.VideoURL = *dto.VideoURL
			}
			if dto.Steps != nil {
				g.Steps = append([]string(nil), (*dto.Steps)...)
			}
		}
	}
	if !found {
		return internal.ErrGuideNotFound
	}

	s.modules = next
	s.persist()
	return nil
}

func (s *Service) DeleteGuide(moduleID, guideID string) error {
	next := cloneModules(s.modules)
	found := false
	for i := range next {
		if next[i].ID != moduleID {
			continue
		}
		guides := make([]Guide, 0, len(next[i].Guides))
		for _, g := range next[i].Guides {
			if g.ID == guideID {
				found = true
				continue
			}
			guides = append(guides, g)
		}
		next[i].Guides = guides
	}
	if !found {
		return internal.ErrGuideNotFound
	}

	s.modules = next
	s.persist()
	s.logger.Info("guide deleted", "module_id", moduleID, "guide_id", guideID)
	return nil
}
