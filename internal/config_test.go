package internal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/helpdeskhq/portal-core/internal"
)

var _ = Describe("Config", func() {
	var cfg *internal.Config

	BeforeEach(func() {
		cfg = &internal.Config{
			Storage:   internal.StorageConfig{Path: "portal.db"},
			Directory: internal.DirectoryConfig{ViewerRoleID: "viewer"},
		}
	})

	It("passes validation when fully populated", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	It("requires a storage path", func() {
		cfg.Storage.Path = "  "
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("storage config"))
	})

	It("requires a viewer fallback role ID", func() {
		cfg.Directory.ViewerRoleID = ""
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("directory config"))
	})

	It("collects every section failure in one error", func() {
		cfg.Storage.Path = ""
		cfg.Directory.ViewerRoleID = ""
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("storage config"))
		Expect(err.Error()).To(ContainSubstring("directory config"))
	})

	It("builds a usable default config from the environment", func() {
		cfg := internal.LoadConfigFromEnv()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Directory.ViewerRoleID).To(Equal("viewer"))
	})
})
