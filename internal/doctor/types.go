package doctor

// Category groups checks by what they inspect.
type Category string

const (
	// CategoryConfig covers the global config file.
	CategoryConfig Category = "config"
	// CategoryRepository covers repository, remote and provider resolution.
	CategoryRepository Category = "repository"
	// CategoryEnvironment covers external programs and the clipboard.
	CategoryEnvironment Category = "environment"
)

// Status is the outcome of a check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Check is a single diagnostic result.
type Check struct {
	Category Category
	Name     string // short label, e.g. "remote"
	Status   Status
	Detail   string // human-readable result
}

// Report collects check results in the order they ran.
type Report struct {
	Checks []Check
}

func (r *Report) add(cat Category, name string, status Status, detail string) {
	r.Checks = append(r.Checks, Check{Category: cat, Name: name, Status: status, Detail: detail})
}

// Find returns the first check with the given name.
func (r *Report) Find(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Count returns the number of checks with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}
