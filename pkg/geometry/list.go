package geometry

import "github.com/davidgray/go-diffuse-raytracer/pkg/core"

// HittableList aggregates hittables and reports the nearest intersection
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates an empty hittable list
func NewHittableList() *HittableList {
	return &HittableList{Objects: make([]Hittable, 0)}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = l.Objects[:0]
}

// Hit returns the nearest intersection among all members within (tMin, tMax).
// The upper bound shrinks to each accepted hit's t, so the record returned is
// the globally closest regardless of insertion order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
