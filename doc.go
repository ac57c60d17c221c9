// Package consteither provides wrapper types whose active variant is fixed
// at the type level instead of by a runtime tag. This is useful when a
// generic data structure should decide, per instantiation, whether to carry
// a field at all, or which of two payload types a field holds, without
// spending a discriminant byte or branching at runtime.
//
// The option comes as the pair Some[T] / None[T], the either as the pair
// Left[L, R] / Right[L, R]. The [ConstOption] and [ConstEither] constraints
// recover a single generic name, so an enclosing structure can take the
// configuration as a type parameter and embed it as a field:
//
//	type record[S consteither.ConstOption[time.Time]] struct {
//		seen S // zero-size fields go first: Go pads them in last position
//		name string
//	}
//
//	bare := record[consteither.None[time.Time]]{name: "bare"}
//	stamped := record[consteither.Some[time.Time]]{
//		name: "stamped",
//		seen: consteither.NewSome(time.Now()),
//	}
//
// The bare instantiation stores nothing for seen; the stamped one stores
// exactly one time.Time. Reading a payload that does not exist is not a
// runtime failure, it is a missing method: None has no accessors, Left has
// no right-side accessor, and the other way around. There is deliberately
// no "which variant is this" query; the variant is part of the type.
package consteither
