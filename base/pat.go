package base

import (
	"github.com/femnad/pat/entity"
	"github.com/femnad/pat/internal"
)

func ReadConfig(filename string) (entity.Config, error) {
	filename = internal.ExpandUser(filename)
	return entity.UnmarshalConfig(filename)
}
