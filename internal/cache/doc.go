// Package cache provides the bounded memo table used for parsed fonts and
// sized faces.
//
//	faces := cache.New[faceKey, *Face](64)
//	f := faces.GetOrCreate(key, func() *Face { return src.Face(size) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
