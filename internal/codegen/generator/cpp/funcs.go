package cpp

import (
	"maps"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/Alia5/accessorgen/internal/codegen/common"
)

func tplFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, template.FuncMap{
		"cpptype":       ResolveType,
		"isPlaceholder": func(t string) bool { return t == PlaceholderType },
		"snakecase":     common.ToSnakeCase,
		"pascalcase":    common.ToPascalCase,
		"methodName":    func(ident string) string { return common.SanitizeLeadingDigit(common.ToSnakeCase(ident)) },
		"includeGuard":  common.IncludeGuard,
	})
	return funcs
}
