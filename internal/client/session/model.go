package session

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/dmitrijs2005/sitegate/internal/client/directory"
)

// Session identifies who is logged in on this client. It never carries a
// password; Dashboards is the allow-list copied from the identity at login.
type Session struct {
	Username   string         `json:"username"`
	Role       directory.Role `json:"role"`
	Dashboards []string       `json:"dashboards"`
}

// FromIdentity builds the session for a freshly authenticated identity.
func FromIdentity(id directory.Identity) Session {
	dashboards := make([]string, len(id.Dashboards))
	copy(dashboards, id.Dashboards)
	return Session{Username: id.Username, Role: id.Role, Dashboards: dashboards}
}

// IsAdmin reports whether the session holds the admin role.
func (s Session) IsAdmin() bool { return s.Role == directory.RoleAdmin }

// Allows reports whether page is on the session's allow-list.
func (s Session) Allows(page string) bool {
	return slices.Contains(s.Dashboards, page)
}

// Preference is a user's stored settings record. Only theme is interpreted;
// any other fields found in storage are carried through unchanged.
type Preference struct {
	Theme string

	extra map[string]json.RawMessage
}

func (p Preference) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.extra)+1)
	maps.Copy(out, p.extra)
	delete(out, "theme")
	if p.Theme != "" {
		raw, err := json.Marshal(p.Theme)
		if err != nil {
			return nil, err
		}
		out["theme"] = raw
	}
	return json.Marshal(out)
}

func (p *Preference) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errNotObject
	}

	var theme string
	if raw, ok := fields["theme"]; ok {
		if err := json.Unmarshal(raw, &theme); err != nil {
			return err
		}
		delete(fields, "theme")
	}

	p.Theme = theme
	p.extra = fields
	return nil
}
