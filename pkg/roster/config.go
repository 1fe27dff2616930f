package roster

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/scoutdeck/scoutdeck/pkg/access"
)

// SeedConfig describes the root agency admin created for an empty workspace.
type SeedConfig struct {
	AdminName      string `env:"ROSTER_ADMIN_NAME" envDefault:"Agency Admin"`
	AdminEmail     string `env:"ROSTER_ADMIN_EMAIL" envDefault:"admin@agency.test"`
	AdminAvatarURL string `env:"ROSTER_ADMIN_AVATAR_URL"`
}

var defaultEnvLoaded sync.Once

// LoadSeedConfig reads the seed configuration from the environment. A .env
// file in the working directory is loaded once as fallback; its absence is
// not an error.
func LoadSeedConfig() (SeedConfig, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg SeedConfig
	if err := env.Parse(&cfg); err != nil {
		return SeedConfig{}, errors.Join(ErrSeedConfig, err)
	}
	return cfg, nil
}

// Seed bootstraps the registry with the root agency admin from the
// environment and selects it as the current user. The admin carries no
// permission config; agency admins are privileged by role.
func Seed(r *Registry) error {
	cfg, err := LoadSeedConfig()
	if err != nil {
		return err
	}

	admin, err := access.NewUser(cfg.AdminName, cfg.AdminEmail, access.RoleAgencyAdmin, nil)
	if err != nil {
		return err
	}
	admin.AvatarURL = cfg.AdminAvatarURL

	r.Append(admin)
	return r.SetCurrent(admin.ID)
}
