package domain

import "fmt"

type Customer struct {
	ID    string
	Name  string
	Email string
}

func (c Customer) Display() string {
	return fmt.Sprintf("Customer[%s] %s <%s>", c.ID, c.Name, c.Email)
}
