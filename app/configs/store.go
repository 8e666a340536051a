package configs

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/repositories/jsonrepo"
	"github.com/zeylcoffee/qrmenu/app/repositories/mongorepo"
)

// OpenStore selects the persistence backend from configuration: "json" for
// the flat-file database, "mongo" for the document database.
func OpenStore(env ENV) (repositories.Store, error) {
	switch env.StorageDriver {
	case "mongo":
		db, err := OpenMongo(env)
		if err != nil {
			return nil, err
		}
		return mongorepo.NewStore(db), nil
	case "json":
		admin, err := DefaultAdmin(env)
		if err != nil {
			return nil, err
		}
		log.Printf("Using JSON database at %s", env.DBFile)
		return jsonrepo.NewStore(env.DBFile, admin), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (expected json or mongo)", env.StorageDriver)
	}
}

// DefaultAdmin builds the bootstrap credential record from configuration,
// falling back to the factory password when none is set.
func DefaultAdmin(env ENV) (models.Admin, error) {
	password := env.AdminPassword
	if password == "" {
		password = "zeyl2025"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, fmt.Errorf("hash default admin password: %w", err)
	}
	return models.Admin{Username: env.AdminUsername, Password: string(hash)}, nil
}
