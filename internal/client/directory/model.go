package directory

// Role is the coarse permission level carried by an identity and its session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is one entry of the user table.
//
// Password is a plaintext comparison value. It must never be copied into
// anything that gets persisted.
type Identity struct {
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	Role       Role     `yaml:"role"`
	Dashboards []string `yaml:"dashboards"`
}

func (i Identity) clone() Identity {
	i.Dashboards = append([]string(nil), i.Dashboards...)
	return i
}
