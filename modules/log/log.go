package log

import (
	"fmt"

	js "github.com/dop251/goja"
	"github.com/rediwo/redi/modules"

	"github.com/rediwo/redi-log/logger"
)

// newLogger is replaced in tests to capture output.
var newLogger = logger.New

// Auto-register on import
func init() {
	modules.RegisterModule("redi/log", initLogModule)
}

func initLogModule(config modules.ModuleConfig) error {
	if config.VM == nil || config.Registry == nil {
		return fmt.Errorf("VM and Registry are required for log module")
	}

	config.Registry.RegisterNativeModule("redi/log", Require)
	return nil
}

// Require is the native module loader for 'redi/log'. It is exported so the
// module can also be mounted on a plain goja_nodejs require registry.
func Require(vm *js.Runtime, module *js.Object) {
	exports := vm.NewObject()
	exports.Set("Logger", loggerConstructor(vm))
	module.Set("exports", exports)
}

// loggerConstructor backs `new Logger(name, options)` in JavaScript.
// Construction validates eagerly; the emission methods never throw.
func loggerConstructor(vm *js.Runtime) func(call js.ConstructorCall) *js.Object {
	return func(call js.ConstructorCall) *js.Object {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Logger requires a name argument"))
		}
		name, ok := call.Arguments[0].Export().(string)
		if !ok || name == "" {
			panic(vm.NewTypeError("Logger name must be a non-empty string"))
		}

		var cfg logger.Config
		if len(call.Arguments) > 1 && !js.IsUndefined(call.Arguments[1]) && !js.IsNull(call.Arguments[1]) {
			options, ok := call.Arguments[1].Export().(map[string]any)
			if !ok {
				panic(vm.NewTypeError("Logger options must be an object"))
			}
			if v, exists := options["level"]; exists {
				s, ok := v.(string)
				if !ok {
					panic(vm.NewTypeError("options.level must be a string"))
				}
				cfg.Level = s
			}
			if v, exists := options["json"]; exists {
				b, ok := v.(bool)
				if !ok {
					panic(vm.NewTypeError("options.json must be a boolean"))
				}
				cfg.JSON = b
			}
		}

		l, err := newLogger(name, cfg)
		if err != nil {
			panic(vm.NewGoError(err))
		}

		obj := call.This
		obj.Set("name", l.Name())
		obj.Set("debug", emitMethod(vm, l.Debug))
		obj.Set("info", emitMethod(vm, l.Info))
		obj.Set("warn", emitMethod(vm, l.Warn))
		obj.Set("error", emitMethod(vm, l.Error))
		return obj
	}
}

// emitMethod wraps a leveled emit func. The JS message goes through "%s"
// so user text is never reinterpreted as a format string.
func emitMethod(vm *js.Runtime, emit func(string, ...any)) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("message argument required"))
		}
		emit("%s", call.Arguments[0].String())
		return js.Undefined()
	}
}
