package organization

// Patch is a partial update to an Organization. Nil fields are left unchanged.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
	City  *string
	State *string
	Notes *string
}

// Apply copies the set fields onto o.
func (p *Patch) Apply(o *Organization) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.Name, p.Name)
	set(&o.Email, p.Email)
	set(&o.Phone, p.Phone)
	set(&o.City, p.City)
	set(&o.State, p.State)
	set(&o.Notes, p.Notes)
}
