package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// detailedError is an error that prints more under %+v, such as a stack.
type detailedError interface {
	error
	fmt.Formatter
}

// zapFields turns slog-style key/value pairs into zap fields. Errors are
// logged as their message; at Error and above the first stack-carrying
// error in the chain is added as <key>_stack.
func zapFields(level zapcore.Level, args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		value := args[i+1]
		if err, ok := value.(error); ok && err != nil {
			out = append(out, errorFields(level, key, err)...)
			continue
		}
		out = append(out, zap.Any(key, value))
	}

	return out
}

func errorFields(level zapcore.Level, key string, err error) []zap.Field {
	fields := []zap.Field{zap.String(key, err.Error())}
	if level < zapcore.ErrorLevel {
		return fields
	}

	var detailed detailedError
	if !errors.As(err, &detailed) {
		return fields
	}
	if verbose := fmt.Sprintf("%+v", detailed); verbose != detailed.Error() {
		fields = append(fields, zap.String(key+"_stack", verbose))
	}
	return fields
}
