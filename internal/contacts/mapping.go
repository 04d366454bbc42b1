package contacts

import (
	"github.com/iamdbstjd/DC-TermProject3/pkg/query"
	"github.com/iamdbstjd/DC-TermProject3/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "contacts", "c").
	Project("id", "ID").
	Project("organization", "Organization").
	Project("phone", "Phone").
	Project("website", "Website").
	Project("hours", "Hours")

var defaultSort = query.SortField{
	Field: "organization",
}

func scanContact(s repository.Scanner) (Contact, error) {
	var c Contact
	err := s.Scan(
		&c.ID,
		&c.Organization,
		&c.Phone,
		&c.Website,
		&c.Hours,
	)
	return c, err
}
