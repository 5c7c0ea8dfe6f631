package codec

import (
	"fmt"
	"reflect"
)

func unregisteredTypeError(t reflect.Type) error {
	return fmt.Errorf("codec: type %s is not registered", t)
}
