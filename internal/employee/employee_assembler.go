package employee

import "employee-service/internal/hateoas"

const (
	resourcePath  = "employees"
	relCollection = "employees"
)

type ModelAssembler struct {
	links hateoas.Builder
}

func NewModelAssembler(baseURL string) *ModelAssembler {
	return &ModelAssembler{links: hateoas.NewBuilder(baseURL)}
}

// ToModel decorates dto with links derived from the id of the entity it was
// mapped from.
func (a *ModelAssembler) ToModel(id int64, dto EmployeeDTO) EmployeeModel {
	return EmployeeModel{
		EmployeeDTO: dto,
		Links: hateoas.Links{
			{Rel: hateoas.RelSelf, Href: a.links.Item(resourcePath, id)},
			{Rel: relCollection, Href: a.links.Collection(resourcePath)},
		},
	}
}

func (a *ModelAssembler) ToCollection(models []EmployeeModel) EmployeeCollection {
	if models == nil {
		models = []EmployeeModel{}
	}
	return EmployeeCollection{
		Content: models,
		Links: hateoas.Links{
			{Rel: hateoas.RelSelf, Href: a.links.Collection(resourcePath)},
		},
	}
}
