package reconciler

import "errors"

// ErrInternal возвращается при внутренних ошибках реконсилера
var ErrInternal = errors.New("reconciler: internal error")
