// Package machinerepo implements the machine repository over GORM/Postgres.
package machinerepo

import (
	"fleetrent/internal/core/domain/model/machine"
)

// MachineDTO is the database row for a machine. The external id ("M-01") is
// the primary key; there is no surrogate.
type MachineDTO struct {
	ID      string `gorm:"primaryKey"`
	Type    string `gorm:"index"`
	Model   string
	Serial  string
	Service string
	State   string `gorm:"index"`
}

// TableName overrides GORM's default naming to use "machines".
func (MachineDTO) TableName() string {
	return "machines"
}

func fromDomain(m *machine.Machine) MachineDTO {
	return MachineDTO{
		ID:      m.ID(),
		Type:    m.Type(),
		Model:   m.Model(),
		Serial:  m.Serial(),
		Service: m.Service(),
		State:   m.State().String(),
	}
}

func toDomain(dto MachineDTO) (*machine.Machine, error) {
	return machine.RestoreMachine(
		dto.ID,
		dto.Type,
		dto.Model,
		dto.Serial,
		dto.Service,
		machine.ParseState(dto.State),
	)
}
