package chain

// Transformation transforms an input value using a parameter.
type Transformation interface {
	Transform(param, input string) (string, error)
}

// TransformationFunc is an adapter to use ordinary functions as transformations.
type TransformationFunc func(param, input string) (string, error)

// Transform calls f(param, input).
func (f TransformationFunc) Transform(param, input string) (string, error) {
	return f(param, input)
}

// Resolver looks up a transformation by its type name.
type Resolver interface {
	Resolve(typeName string) (Transformation, bool)
}

// ResolverFunc is an adapter to use ordinary functions as resolvers.
type ResolverFunc func(typeName string) (Transformation, bool)

// Resolve calls f(typeName).
func (f ResolverFunc) Resolve(typeName string) (Transformation, bool) {
	return f(typeName)
}
