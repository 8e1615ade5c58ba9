package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/portal-core/internal/catalog"
	"github.com/helpdeskhq/portal-core/internal/directory"
	"github.com/helpdeskhq/portal-core/internal/storage"
	"github.com/helpdeskhq/portal-core/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with the default catalog, roles, and users",
	Long:  `Write the default module catalog, system roles, and sample users into the durable store for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		store, err := storage.Open(cfg.Storage.Path, logger.L())
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}

		if clearData {
			for _, key := range []string{catalog.StoreKey, directory.RolesStoreKey, directory.UsersStoreKey} {
				if err := store.Delete(key); err != nil {
					log.Fatalf("failed to clear record %s: %v", key, err)
				}
			}
			fmt.Println("Cleared existing records")
		}

		var existing []catalog.Module
		if ok, _ := store.Load(catalog.StoreKey, &existing); ok {
			fmt.Println("catalog record already exists; skipping")
		} else {
			if err := store.Save(catalog.StoreKey, catalog.DefaultModules()); err != nil {
				log.Fatalf("failed to seed catalog: %v", err)
			}
			fmt.Println("Seeded default catalog:", catalog.StoreKey)
		}

		var existingRoles []directory.Role
		if ok, _ := store.Load(directory.RolesStoreKey, &existingRoles); ok {
			fmt.Println("roles record already exists; skipping")
		} else {
			if err := store.Save(directory.RolesStoreKey, directory.DefaultRoles()); err != nil {
				log.Fatalf("failed to seed roles: %v", err)
			}
			fmt.Println("Seeded system roles:", directory.RolesStoreKey)
		}

		var existingUsers []directory.User
		if ok, _ := store.Load(directory.UsersStoreKey, &existingUsers); ok {
			fmt.Println("users record already exists; skipping")
		} else {
			if err := store.Save(directory.UsersStoreKey, directory.DefaultUsers()); err != nil {
				log.Fatalf("failed to seed users: %v", err)
			}
			fmt.Println("Seeded sample users:", directory.UsersStoreKey)
		}
	},
}
