package model

import "cogentcore.org/core/math32"

// Transform — размещение узла в мировых координатах.
// Value type, передаётся по значению (immutable).
type Transform struct {
	Position math32.Vector3
	Rotation math32.Quat
	Scale    math32.Vector3
}

// Identity возвращает Transform в начале координат, без поворота, с единичным масштабом.
func Identity() Transform {
	return Transform{
		Rotation: math32.NewQuat(0, 0, 0, 1),
		Scale:    math32.Vec3(1, 1, 1),
	}
}

// NewTransform создаёт Transform с равномерным масштабом.
func NewTransform(pos math32.Vector3, rot math32.Quat, scale float32) Transform {
	return Transform{Position: pos, Rotation: rot, Scale: math32.Vec3(scale, scale, scale)}
}

// WithPosition возвращает новый Transform с обновлённой позицией (immutable pattern).
func (t Transform) WithPosition(pos math32.Vector3) Transform {
	t.Position = pos
	return t
}

// WithRotation возвращает новый Transform с обновлённым поворотом (immutable pattern).
func (t Transform) WithRotation(rot math32.Quat) Transform {
	t.Rotation = rot
	return t
}

// WithScale возвращает новый Transform с обновлённым масштабом (immutable pattern).
func (t Transform) WithScale(scale math32.Vector3) Transform {
	t.Scale = scale
	return t
}

// TransformPoint переводит точку из локального пространства в мировое:
// сначала scale, затем rotation, затем translation.
func (t Transform) TransformPoint(p math32.Vector3) math32.Vector3 {
	scaled := math32.Vec3(p.X*t.Scale.X, p.Y*t.Scale.Y, p.Z*t.Scale.Z)
	return scaled.MulQuat(t.Rotation).Add(t.Position)
}

// DistanceSquared возвращает квадрат расстояния между двумя точками (без sqrt).
func DistanceSquared(a, b math32.Vector3) float32 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}
