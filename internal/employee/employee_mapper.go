package employee

func ToDTO(empl Employee) EmployeeDTO {
	return EmployeeDTO{
		Name:  empl.Name,
		Role:  empl.Role,
		Email: empl.Email,
	}
}

// ToEntity builds an unsaved entity; the ID is left for the store to assign.
func ToEntity(dto EmployeeDTO) *Employee {
	return &Employee{
		Name:  dto.Name,
		Role:  dto.Role,
		Email: dto.Email,
	}
}

// applyDTO replaces every business field of empl with the DTO's values.
func applyDTO(empl *Employee, dto EmployeeDTO) {
	empl.Name = dto.Name
	empl.Role = dto.Role
	empl.Email = dto.Email
}
