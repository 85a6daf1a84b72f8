package fp

// Number is the set of types the arithmetic helpers accept
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the set of types Modulo accepts
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func Add[T Number](a, b T) T { return a + b }

func Subtract[T Number](a, b T) T { return a - b }

func Multiply[T Number](a, b T) T { return a * b }

// Divide panics on integer division by zero, like the / operator.
func Divide[T Number](a, b T) T { return a / b }

func Modulo[T Integer](a, b T) T { return a % b }

func Inc[T Number](a T) T { return a + 1 }

func Dec[T Number](a T) T { return a - 1 }
