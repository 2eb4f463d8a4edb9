package sites

// builtinProfiles returns the profiles compiled into the binary. Each call
// returns a fresh slice so callers can extend a registry without mutating
// the defaults.
func builtinProfiles() []Profile {
	return []Profile{
		{
			Name:    "cnet",
			Domains: []string{"cnet.com"},
			Rules: []Rule{
				{Selector: `.c-globalUpdatedDate time[datetime]`},
				{Selector: `.BylineCard_date-updated time[datetime]`},
				{Selector: `[data-cy="globalUpdatedDate"] time[datetime]`},
				{Selector: `[data-testid="globalUpdatedDate"] time[datetime]`},
				{Selector: `time[datetime][itemprop="dateModified"]`},
			},
		},
	}
}
