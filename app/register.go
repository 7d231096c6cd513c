// Package app holds the classes the front controller can reach out of the box.
package app

import (
	"github.com/dmleach/frock/core"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"
)

type class struct {
	role    models.Role
	path    string
	factory services.Factory
}

var classes = []class{
	{models.RoleController, "hello", func() services.Class { return &HelloController{} }},
	{models.RoleController, "status", func() services.Class { return &StatusController{} }},
	{models.RoleController, "user/list", func() services.Class { return &UserListController{} }},
	{models.RoleModel, "hello", func() services.Class { return &GreetingModel{} }},
	{models.RoleModel, "user", func() services.Class { return &UserModel{} }},
	{models.RoleView, "hello", func() services.Class { return &HelloView{} }},
}

// Register adds every app class under the namespace prefixes in ns,
// using the same naming policy the dispatcher resolves with.
func Register(reg *services.Registry, ns map[models.Role]string) error {
	for _, c := range classes {
		if err := reg.Register(core.ClassName(ns[c.role], c.path), c.factory); err != nil {
			return err
		}
	}
	return nil
}
