package performance

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metrics is the typed review payload stored as a JSON column.
// Feedback is an ordered list, newest entry last.
type Metrics struct {
	Ratings  map[string]float64 `json:"ratings,omitempty"`
	Feedback []string           `json:"feedback,omitempty"`
}

func (m Metrics) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Metrics) Scan(value interface{}) error {
	if value == nil {
		*m = Metrics{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metrics column type %T", value)
	}
}

type Performance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Metrics    Metrics   `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (Performance) TableName() string {
	return "performances"
}
