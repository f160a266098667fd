package poly

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/only4sim/binius/field"
)

// Sets a maximum for the array size we keep in pool
const maxNForLargePool int = 1 << 22
const maxNForSmallPool int = 256

// One pool pair per concrete field type. Pooling fixed-size arrays does not
// survive generics, so the pools hold full-capacity slices and the registry
// keys on the backing array address.
type typedPools struct {
	large, small sync.Pool
}

var poolsByType sync.Map // reflect.Type -> *typedPools

var rC sync.Map = sync.Map{}

func poolsFor[F field.Element[F]]() *typedPools {
	key := reflect.TypeOf(field.Zero[F]())
	if p, ok := poolsByType.Load(key); ok {
		return p.(*typedPools)
	}

	p := &typedPools{
		large: sync.Pool{
			New: func() interface{} {
				res := make([]F, maxNForLargePool)
				return &res
			},
		},
		small: sync.Pool{
			New: func() interface{} {
				res := make([]F, maxNForSmallPool)
				return &res
			},
		},
	}

	actual, _ := poolsByType.LoadOrStore(key, p)
	return actual.(*typedPools)
}

func backingPtr[F field.Element[F]](m []F) unsafe.Pointer {
	return unsafe.Pointer(&m[:1][0])
}

// MakeLarge returns a table of size n backed by the large pool.
func MakeLarge[F field.Element[F]](n int) MultiLin[F] {
	if n > maxNForLargePool {
		panic(fmt.Sprintf("been provided with size of %v but the maximum is %v", n, maxNForLargePool))
	}

	ptr := poolsFor[F]().large.Get().(*[]F)
	rC.Store(backingPtr(*ptr), ptr) // remember the pointer is being used
	return MultiLin[F]((*ptr)[:n])
}

// DumpLarge returns tables obtained from MakeLarge to the pool.
func DumpLarge[F field.Element[F]](arrs ...MultiLin[F]) {
	for _, arr := range arrs {
		if cap(arr) != maxNForLargePool {
			panic(fmt.Sprintf("can't put back a table of capacity %v, the large pool holds %v", cap(arr), maxNForLargePool))
		}
		// If the rC did not registers, then
		// either the array was allocated somewhere else and its fine to ignore
		// otherwise a double put and we MUST ignore
		if ptr, ok := rC.LoadAndDelete(backingPtr(arr)); ok {
			poolsFor[F]().large.Put(ptr)
		}
	}
}

// MakeSmall returns a table of size n backed by the small pool.
func MakeSmall[F field.Element[F]](n int) MultiLin[F] {
	if n > maxNForSmallPool {
		panic(fmt.Sprintf("want size of %v but the maximum is %v", n, maxNForSmallPool))
	}

	ptr := poolsFor[F]().small.Get().(*[]F)
	rC.Store(backingPtr(*ptr), ptr) // registers the pointer being used
	return MultiLin[F]((*ptr)[:n])
}

// DumpSmall returns tables obtained from MakeSmall to the pool.
func DumpSmall[F field.Element[F]](arrs ...MultiLin[F]) {
	for _, arr := range arrs {
		if cap(arr) != maxNForSmallPool {
			panic(fmt.Sprintf("can't put back a table of capacity %v, the small pool holds %v", cap(arr), maxNForSmallPool))
		}
		// If the rC did not registers, then
		// either the multilin was allocated somewhere else and its fine to ignore
		// otherwise a double put and we MUST ignore
		if ptr, ok := rC.LoadAndDelete(backingPtr(arr)); ok {
			poolsFor[F]().small.Put(ptr)
		}
	}
}
