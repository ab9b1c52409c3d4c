package person

import (
	"time"

	"github.com/amirasaad/ledger/infra/repository/account"
	"github.com/google/uuid"
)

// Person represents a person record in the database. Deleting a person
// cascades to its account through the person_id foreign key.
type Person struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name      string           `gorm:"size:200;not null"`
	Account   *account.Account `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Person model.
func (Person) TableName() string {
	return "people"
}
