package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/brewshare/backend/internal/database"
	"github.com/pageza/brewshare/backend/internal/models"
)

// SeedFile is the YAML catalog loaded by brewctl seed
type SeedFile struct {
	Users    []SeedUser    `yaml:"users"`
	Grinders []SeedGrinder `yaml:"grinders"`
	Beans    []SeedBean    `yaml:"beans"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type SeedGrinder struct {
	Brand      string  `yaml:"brand"`
	Model      string  `yaml:"model"`
	BurrType   string  `yaml:"burr_type"`
	MinSetting float64 `yaml:"min_setting"`
	MaxSetting float64 `yaml:"max_setting"`
}

// SeedBean is owned by the seeded user with OwnerEmail
type SeedBean struct {
	OwnerEmail string `yaml:"owner"`
	Name       string `yaml:"name"`
	Roaster    string `yaml:"roaster"`
	Origin     string `yaml:"origin"`
	Process    string `yaml:"process"`
	RoastLevel string `yaml:"roast_level"`
	Notes      string `yaml:"notes"`
}

// SeedResult counts the rows a seed run inserted
type SeedResult struct {
	Users    int
	Grinders int64
	Beans    int
}

// LoadSeedFile reads and parses a YAML seed file
func LoadSeedFile(path string) (*SeedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Seed inserts the catalog. Rows that already exist are left untouched, so
// running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, seed *SeedFile) (*SeedResult, error) {
	result := &SeedResult{}
	owners := make(map[string]models.User, len(seed.Users))

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range seed.Users {
			email := strings.ToLower(strings.TrimSpace(u.Email))
			var user models.User
			if err := tx.Where("email = ?", email).First(&user).Error; err == nil {
				owners[email] = user
				continue
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", email, err)
			}
			user = models.User{Email: email, Name: u.Name, PasswordHash: string(hash)}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", email, err)
			}
			owners[email] = user
			result.Users++
		}

		for _, g := range seed.Grinders {
			grinder := models.Grinder{
				Brand:      g.Brand,
				Model:      g.Model,
				BurrType:   g.BurrType,
				MinSetting: g.MinSetting,
				MaxSetting: g.MaxSetting,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "brand"}, {Name: "model"}},
				DoNothing: true,
			}).Create(&grinder)
			if res.Error != nil {
				return fmt.Errorf("failed to create grinder %s %s: %w", g.Brand, g.Model, res.Error)
			}
			result.Grinders += res.RowsAffected
		}

		for _, b := range seed.Beans {
			owner, ok := owners[strings.ToLower(b.OwnerEmail)]
			if !ok {
				return fmt.Errorf("bean %q: owner %q is not a seeded user", b.Name, b.OwnerEmail)
			}
			var existing int64
			if err := tx.Model(&models.Bean{}).Where("user_id = ? AND name = ?", owner.ID, b.Name).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to look up bean %s: %w", b.Name, err)
			}
			if existing > 0 {
				continue
			}
			bean := models.Bean{
				UserID:     owner.ID,
				Name:       b.Name,
				Roaster:    b.Roaster,
				Origin:     b.Origin,
				Process:    b.Process,
				RoastLevel: b.RoastLevel,
				Notes:      b.Notes,
			}
			if err := tx.Create(&bean).Error; err != nil {
				return fmt.Errorf("failed to create bean %s: %w", b.Name, err)
			}
			result.Beans++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, grinders and beans from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := LoadSeedFile(file)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.New(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := Seed(cmd.Context(), db, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d grinders, %d beans\n",
				result.Users, result.Grinders, result.Beans)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "path to the seed file")

	return cmd
}
