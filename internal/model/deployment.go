package model

// Deployment is the insertion-ordered collection of Builds read from one
// configuration document. Each build's package should be unique within the
// deployment; duplicates are not rejected here and behave as independent
// builds with last-wins effects in the derived graph.
type Deployment struct {
	builds []Build
}

// NewDeployment creates a Deployment holding the given builds.
func NewDeployment(builds ...Build) *Deployment {
	return &Deployment{builds: builds}
}

// Append adds a build to the deployment.
func (d *Deployment) Append(build Build) {
	d.builds = append(d.builds, build)
}

// Builds returns all builds in insertion order. The returned slice is
// shared; callers must not modify it.
func (d *Deployment) Builds() []Build { return d.builds }

// Len returns the number of builds.
func (d *Deployment) Len() int { return len(d.builds) }

// Contains reports whether some build in the deployment produces exactly
// the given package (strict identity, no wildcard matching).
func (d *Deployment) Contains(pkg Package) bool {
	for _, b := range d.builds {
		if b.pkg.Equal(pkg) {
			return true
		}
	}
	return false
}
