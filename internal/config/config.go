package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "focustask.db"
	DefaultLogName        = "focustask.log"
	appDirName            = "focustask"
	configEnv             = "FOCUSTASK_CONFIG"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Edit       string `toml:"edit"`
	MoveUp     string `toml:"move_up"`
	MoveDown   string `toml:"move_down"`
	NextDay    string `toml:"next_day"`
	Sort       string `toml:"sort"`
	NextScreen string `toml:"next_screen"`
	PrevScreen string `toml:"prev_screen"`
	Guest      string `toml:"guest"`
	SwitchMode string `toml:"switch_mode"`
	Logout     string `toml:"logout"`
}

type Profile struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Bio   string `toml:"bio"`
}

type Config struct {
	DBPath       string  `toml:"db_path"`
	LogPath      string  `toml:"log_path"`
	LogLevel     string  `toml:"log_level"`
	DefaultDay   string  `toml:"default_day"`
	DefaultSort  string  `toml:"default_sort"`
	LoginDelayMS int     `toml:"login_delay_ms"`
	SeedOnStart  bool    `toml:"seed_on_start"`
	Profile      Profile `toml:"profile"`
	Keys         Keymap  `toml:"keys"`
}

func (c Config) LoginDelay() time.Duration {
	if c.LoginDelayMS < 0 {
		return 0
	}
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// ResolveConfigPath picks the config file: $FOCUSTASK_CONFIG (a .env file in
// the working directory may set it), else the per-user config directory.
func ResolveConfigPath() string {
	_ = godotenv.Load()
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there first when it does not
// exist. Relative db and log paths resolve against the config's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	base := filepath.Dir(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(base), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	return cfg.resolve(base), nil
}

func (c Config) resolve(base string) Config {
	if !filepath.IsAbs(c.DBPath) && !isURI(c.DBPath) {
		c.DBPath = filepath.Join(base, c.DBPath)
	}
	if !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(base, c.LogPath)
	}
	return c
}

func isURI(p string) bool {
	return strings.HasPrefix(p, "file:")
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default is the configuration written on first launch.
func Default() Config {
	return Config{
		DBPath:       DefaultDBName,
		LogPath:      DefaultLogName,
		LogLevel:     "info",
		DefaultDay:   "today",
		DefaultSort:  "priority-high-low",
		LoginDelayMS: 1000,
		SeedOnStart:  true,
		Profile: Profile{
			Name:  "John Doe",
			Email: "john.doe@example.com",
			Bio:   "A passionate developer working on FocusTask.",
		},
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Confirm:    "enter",
			Cancel:     "esc",
			Edit:       "e",
			MoveUp:     "K",
			MoveDown:   "J",
			NextDay:    "t",
			Sort:       "s",
			NextScreen: "tab",
			PrevScreen: "shift+tab",
			Guest:      "ctrl+g",
			SwitchMode: "ctrl+r",
			Logout:     "L",
		},
	}
}
