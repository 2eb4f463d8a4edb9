package sites

// Registry holds the known profiles and answers domain lookups.
type Registry struct {
	profiles []Profile
}

// NewRegistry creates a registry over the given profiles.
func NewRegistry(profiles ...Profile) *Registry {
	return &Registry{profiles: profiles}
}

// DefaultRegistry returns a registry seeded with the built-in profiles.
func DefaultRegistry() *Registry {
	return NewRegistry(builtinProfiles()...)
}

// Register appends profiles to the registry. Later registrations do not
// shadow earlier ones; the first matching profile wins.
func (r *Registry) Register(profiles ...Profile) {
	r.profiles = append(r.profiles, profiles...)
}

// Lookup returns the first profile covering the host, or nil when no
// profile applies.
func (r *Registry) Lookup(host string) *Profile {
	for i := range r.profiles {
		if r.profiles[i].Matches(host) {
			return &r.profiles[i]
		}
	}
	return nil
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}
