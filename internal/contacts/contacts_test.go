package contacts_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/contacts"
)

func TestDefaults(t *testing.T) {
	defaults := contacts.Defaults()

	if len(defaults) != 4 {
		t.Fatalf("len(Defaults()) = %d, want 4", len(defaults))
	}

	byOrg := make(map[string]contacts.Contact, len(defaults))
	for _, c := range defaults {
		byOrg[c.Organization] = c
	}

	tests := []struct {
		organization string
		phone        string
	}{
		{"국민연금공단", "1355"},
		{"국민건강보험공단", "1577-1000"},
		{"보건복지상담센터", "129"},
		{"국세상담센터", "126"},
	}

	for _, tt := range tests {
		c, ok := byOrg[tt.organization]
		if !ok {
			t.Errorf("Defaults() missing %s", tt.organization)
			continue
		}
		if c.Phone != tt.phone {
			t.Errorf("%s phone = %q, want %q", tt.organization, c.Phone, tt.phone)
		}
	}
}
