package showcase

import "testing"

func TestIsAuthorized(t *testing.T) {
	const admin = "admin@example.com"

	cases := []struct {
		name     string
		identity string
		want     bool
	}{
		{"authorized identity", admin, true},
		{"different valid account", "reader@example.com", false},
		{"signed out", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAuthorized(tc.identity, admin); got != tc.want {
				t.Errorf("IsAuthorized(%q) = %v, want %v", tc.identity, got, tc.want)
			}
		})
	}
}

func TestIsAuthorizedEmptyAdminNeverMatches(t *testing.T) {
	// A misconfigured empty admin email must not authorize signed-out visitors.
	if IsAuthorized("", "") {
		t.Error("empty identity with empty admin email must not be authorized")
	}
}
