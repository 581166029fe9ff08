package modules

import (
	"github.com/vantage-crm/vantage/modules/crm"
	"github.com/vantage-crm/vantage/pkg/application"
)

// Load registers every built-in module on the application.
func Load(app application.Application) error {
	for _, module := range BuiltInModules() {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}

func BuiltInModules() []application.Module {
	return []application.Module{
		crm.NewModule(),
	}
}
