package sites

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoProfiles indicates no usable profiles were found in the file
	ErrNoProfiles = errors.New("no profiles found in configuration")

	// ErrMissingRequiredField indicates a required profile field is missing
	ErrMissingRequiredField = errors.New("missing required field")
)

// profilesFile represents the structure of a profiles YAML file.
type profilesFile struct {
	Profiles []map[string]any `yaml:"profiles"`
}

// Loader reads publisher profiles from a YAML file.
type Loader struct {
	configPath string
}

// NewLoader creates a new Loader instance.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// LoadProfiles loads and validates all profiles from the configuration.
// Entries that fail to decode or validate are skipped; an error is
// returned only when nothing usable remains.
func (l *Loader) LoadProfiles() ([]Profile, error) {
	raw, err := l.loadRawProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load raw profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(raw))
	for _, entry := range raw {
		profile, convertErr := l.convertToProfile(entry)
		if convertErr != nil {
			continue
		}
		if validateErr := l.validateProfile(&profile); validateErr != nil {
			continue
		}
		profiles = append(profiles, profile)
	}

	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	return profiles, nil
}

// loadRawProfiles loads the raw profile data from the configuration file.
func (l *Loader) loadRawProfiles() ([]map[string]any, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	return file.Profiles, nil
}

// convertToProfile converts a raw profile map to a Profile struct.
func (l *Loader) convertToProfile(src map[string]any) (Profile, error) {
	var profile Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return Profile{}, fmt.Errorf("failed to create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(src); decodeErr != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", decodeErr)
	}

	return profile, nil
}

// validateProfile validates a profile configuration.
func (l *Loader) validateProfile(profile *Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}

	if len(profile.Domains) == 0 {
		return fmt.Errorf("%w: domains", ErrMissingRequiredField)
	}

	if len(profile.Rules) == 0 {
		return fmt.Errorf("%w: rules", ErrMissingRequiredField)
	}

	for _, rule := range profile.Rules {
		if rule.Selector == "" {
			return fmt.Errorf("%w: rule selector", ErrMissingRequiredField)
		}
	}

	return nil
}
