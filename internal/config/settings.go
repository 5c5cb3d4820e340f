package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fjacquet/fattura-desk/internal/dateutils"
	"fjacquet/fattura-desk/internal/fileutils"

	"github.com/spf13/viper"
)

// FileName is the sectioned configuration file the desktop application
// has always used.
const FileName = "config.ini"

// Download window flags persisted in the [Parametri] section.
const (
	// TipoDataRicezione selects the reception-date window.
	TipoDataRicezione = "1"
	// TipoDataEmissione selects the emission-date window.
	TipoDataEmissione = "2"
	// VenOAcqAcquisti selects purchase invoices.
	VenOAcqAcquisti = "A"
	// VenOAcqVendite selects sale invoices.
	VenOAcqVendite = "V"
)

// Settings mirrors the recognised sections of the configuration file.
// Unknown keys are preserved on write but not exposed.
type Settings struct {
	Autenticazione struct {
		PercorsoDatabase string `mapstructure:"percorso_database"`
		CodiceFiscale    string `mapstructure:"codicefiscale"`
		PIN              string `mapstructure:"pin"`
		Password         string `mapstructure:"password"`
	} `mapstructure:"autenticazione"`

	Parametri struct {
		// Dal and Al are the window bounds in compact DDMMYYYY form.
		Dal  string `mapstructure:"dal"`
		Al   string `mapstructure:"al"`
		Tipo string `mapstructure:"tipo"`
		// VenOAcq is A for purchases, V for sales.
		VenOAcq string `mapstructure:"venoacq"`
		// Aggiornamento is the last successful run date, DD/MM/YYYY.
		Aggiornamento  string `mapstructure:"aggiornamento"`
		CartellaStampa string `mapstructure:"cartellastampa"`
	} `mapstructure:"parametri"`

	Configurazione struct {
		SenderEmail    string `mapstructure:"sender_email"`
		SenderPassword string `mapstructure:"sender_password"`
		RecipientEmail string `mapstructure:"recipient_email"`
		Body           string `mapstructure:"body"`
	} `mapstructure:"configurazione"`

	path string
	v    *viper.Viper
}

// Resolve produces the absolute path of the configuration file: an
// explicit path wins, then the working directory, then the directory
// the executable lives in, then the per-user directory. When no file
// exists yet the working-directory location is returned so the first
// save creates it there.
func Resolve(explicit string) string {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return explicit
		}
		return abs
	}

	local, err := filepath.Abs(FileName)
	if err != nil {
		local = FileName
	}
	if fileutils.FileExists(local) {
		return local
	}

	if exe, err := os.Executable(); err == nil {
		beside := filepath.Join(filepath.Dir(exe), FileName)
		if fileutils.FileExists(beside) {
			return beside
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		user := filepath.Join(home, ".fattura-desk", FileName)
		if fileutils.FileExists(user) {
			return user
		}
	}

	return local
}

// Load reads the configuration file at the given path, or at the
// resolved default location when path is empty. A missing file yields
// empty settings so a fresh installation starts without one.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = Resolve("")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		if fileutils.FileExists(path) {
			return nil, fmt.Errorf("error reading configuration %s: %w", path, err)
		}
		Logger.WithField("path", path).Debug("No configuration file yet, using defaults")
	}

	s := &Settings{path: path, v: v}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error decoding configuration %s: %w", path, err)
	}
	return s, nil
}

// Path returns the absolute location of the configuration file.
func (s *Settings) Path() string {
	return s.path
}

// StorePath returns the absolute location of the store file. Relative
// paths resolve against the configuration file's directory; the default
// is fatture.db next to the configuration.
func (s *Settings) StorePath() string {
	p := s.Autenticazione.PercorsoDatabase
	if p == "" {
		p = "fatture.db"
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(s.path), p)
	}
	return filepath.Clean(p)
}

// DepositDir returns the directory the scraper deposits XML files in,
// resolved like StorePath. The default is the configuration directory
// itself.
func (s *Settings) DepositDir() string {
	d := s.Parametri.CartellaStampa
	if d == "" {
		return filepath.Dir(s.path)
	}
	if !filepath.IsAbs(d) {
		d = filepath.Join(filepath.Dir(s.path), d)
	}
	return filepath.Clean(d)
}

// Window parses the persisted download window bounds.
func (s *Settings) Window() (dal, al time.Time, err error) {
	dal, err = time.Parse(dateutils.LayoutCompact, s.Parametri.Dal)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window start %q: %w", s.Parametri.Dal, err)
	}
	al, err = time.Parse(dateutils.LayoutCompact, s.Parametri.Al)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window end %q: %w", s.Parametri.Al, err)
	}
	return dal, al, nil
}

// SaveWindow persists the download window and mode flags and stamps the
// run date, rewriting the configuration file in place.
func (s *Settings) SaveWindow(dal, al time.Time, tipo int, venoacq string) error {
	if tipo != 1 && tipo != 2 {
		return fmt.Errorf("invalid window tipo %d", tipo)
	}
	if venoacq != VenOAcqAcquisti && venoacq != VenOAcqVendite {
		return fmt.Errorf("invalid venoacq flag %q", venoacq)
	}

	s.Parametri.Dal = dateutils.ToCompact(dal)
	s.Parametri.Al = dateutils.ToCompact(al)
	s.Parametri.Tipo = strconv.Itoa(tipo)
	s.Parametri.VenOAcq = venoacq
	s.Parametri.Aggiornamento = dateutils.ToItalian(time.Now())

	s.v.Set("parametri.dal", s.Parametri.Dal)
	s.v.Set("parametri.al", s.Parametri.Al)
	s.v.Set("parametri.tipo", s.Parametri.Tipo)
	s.v.Set("parametri.venoacq", s.Parametri.VenOAcq)
	s.v.Set("parametri.aggiornamento", s.Parametri.Aggiornamento)

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("error creating configuration directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("error writing configuration %s: %w", s.path, err)
	}

	Logger.WithFields(map[string]any{
		"dal": s.Parametri.Dal, "al": s.Parametri.Al,
		"tipo": s.Parametri.Tipo, "venoacq": s.Parametri.VenOAcq,
	}).Debug("Download window saved")
	return nil
}
