// Package triaxis does forward and inverse kinematics for a planar
// three axis robot arm defined as a chain of three revolute joints.
//
// The arm lives in the XY plane. With the arm in its "all angles
// zero" pose every segment points along the positive X direction:
//
//	J0 = rotate around Z an arm segment of length l1 (angle alpha,
//	     measured from the +X axis of the base frame)
//	J1 = rotate around Z an arm segment of length l2 (angle beta,
//	     relative to the direction of the first segment)
//	J2 = rotate around Z an arm segment of length l3 (angle gamma,
//	     relative to the direction of the second segment)
//
// Angles accumulate along the chain, so the orientation of the arm's
// tip is alpha+beta+gamma.
package triaxis

import (
	"errors"
	"fmt"
	"math"

	"zappem.net/pub/math/geom"
)

// Arm holds the fixed geometry of the arm: the base location of the
// first joint and the three link lengths. An Arm is immutable once
// constructed and safe for concurrent use.
type Arm struct {
	Base       geom.Vector
	L1, L2, L3 float64
}

// Joints holds a triple of joint angles. Alpha is the absolute angle
// of the first link from the base frame; Beta and Gamma are each
// relative to the preceding link. Construct values with geom.Degrees
// or geom.Angle (radians).
type Joints struct {
	Alpha, Beta, Gamma geom.Angle
}

// Pose holds the cartesian result of the forward kinematics: the
// four chain points from base to tip, the tip orientation and the
// base to tip reach.
type Pose struct {
	Base, Elbow, Wrist, Tip geom.Vector

	// Phi is the orientation of the final link, equal to the sum
	// of the three joint angles.
	Phi geom.Angle

	// Reach is the distance from the base to the tip.
	Reach float64
}

// Points returns the chain points in base to tip order, convenient
// for plotting the arm as a polyline.
func (p Pose) Points() []geom.Vector {
	return []geom.Vector{p.Base, p.Elbow, p.Wrist, p.Tip}
}

// Err* are the errors exported by this package.
var (
	ErrBadLink    = errors.New("link length must be positive")
	ErrTooFar     = errors.New("wrist beyond reach of first two links")
	ErrTooClose   = errors.New("wrist inside minimum reach of first two links")
	ErrSingular   = errors.New("wrist at base so first joint angle is undefined")
	ErrNoSolution = errors.New("no inverse kinematics solution")
)

// ReachError reports a wrist target outside the annular workspace of
// the first two links. Distance is the computed wrist distance from
// the arm base and Bound the reach limit it violated. It unwraps to
// ErrTooFar or ErrTooClose.
type ReachError struct {
	Reason   error
	Distance float64
	Bound    float64
}

func (e *ReachError) Error() string {
	return fmt.Sprintf("%v: d=%.3f, bound=%.3f", e.Reason, e.Distance, e.Bound)
}

func (e *ReachError) Unwrap() error { return e.Reason }

// singular is the squared wrist distance below which the first joint
// angle is treated as undefined.
const singular = 1e-6

// NewArm specifies the geometry for an arm. The base vector locates
// the first joint in the XY plane (nil means the origin) and the
// three link lengths must be strictly positive.
func NewArm(base geom.Vector, l1, l2, l3 float64) (*Arm, error) {
	for i, l := range []float64{l1, l2, l3} {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%w: l%d=%v", ErrBadLink, i+1, l)
		}
	}
	if base == nil {
		base = geom.V(0)
	}
	return &Arm{Base: base, L1: l1, L2: l2, L3: l3}, nil
}

// MaxReach returns the fully extended reach of the arm.
func (ar *Arm) MaxReach() float64 {
	return ar.L1 + ar.L2 + ar.L3
}

// MinReach returns the closest the tip can approach the base with
// the elbow fully folded. Folding the third link further is not
// counted: its angle is spent on tip orientation, not on reach.
func (ar *Arm) MinReach() float64 {
	return math.Abs(ar.L1-ar.L2) + ar.L3
}

// ray returns the vector of length r along direction a in the arm's
// plane.
func ray(r float64, a geom.Angle) geom.Vector {
	return geom.V(r*a.C(), r*a.S(), 0)
}

// Forward evaluates the forward kinematics for a triple of joint
// angles and returns the resulting pose. It is total: any real
// valued angles, however large or wrapped, produce a valid pose. The
// pose is a fresh value each call and the arm itself is never
// modified.
func (ar *Arm) Forward(j Joints) Pose {
	a := j.Alpha
	elbow := ar.Base.Add(ray(ar.L1, a))
	a += j.Beta
	wrist := elbow.Add(ray(ar.L2, a))
	a += j.Gamma
	tip := wrist.Add(ray(ar.L3, a))
	return Pose{
		Base:  ar.Base,
		Elbow: elbow,
		Wrist: wrist,
		Tip:   tip,
		Phi:   a,
		Reach: tip.Sub(ar.Base).R(),
	}
}

// Inverse computes the joint angles that place the arm's tip at
// target with final orientation phi. The third link is peeled off
// first: its start, the wrist, must sit at distance l3 from the
// target opposite phi, which reduces the problem to positioning the
// two link chain l1,l2 at the wrist and then absorbing the residual
// orientation into the last joint.
//
// The solver always returns the elbow-up solution; the mirrored
// elbow-down branch exists for any reachable wrist but is never
// produced, so identical inputs yield identical angles. A
// *ReachError wrapping ErrTooFar or ErrTooClose is returned when the
// wrist falls outside the workspace annulus of the first two links
// (the annulus boundary itself is reachable), and ErrSingular when
// the wrist coincides with the base. Every failure is a rejected
// input: the arm remains usable for further calls.
func (ar *Arm) Inverse(target geom.Vector, phi geom.Angle) (Joints, error) {
	w := target.Sub(ray(ar.L3, phi)).Sub(ar.Base)
	wx, wy := w[0], w[1]
	d2 := wx*wx + wy*wy
	d := math.Sqrt(d2)

	// A pose computed by Forward can round the wrist a hair past
	// either workspace circle, so only reject distances that are
	// past a bound by more than the zero tolerance. The clamp on
	// c2 below absorbs what rounding remains.
	if outer := ar.L1 + ar.L2; d > outer && !geom.Zeroish(d-outer) {
		return Joints{}, &ReachError{Reason: ErrTooFar, Distance: d, Bound: outer}
	}
	if inner := math.Abs(ar.L1 - ar.L2); d < inner && !geom.Zeroish(inner-d) {
		return Joints{}, &ReachError{Reason: ErrTooClose, Distance: d, Bound: inner}
	}

	// Law of cosines for the elbow. Rounding can push c2 just past
	// the ends of [-1,1] when the wrist sits on the workspace
	// boundary, so clamp before the implicit acos.
	c2 := (d2 - ar.L1*ar.L1 - ar.L2*ar.L2) / (2 * ar.L1 * ar.L2)
	if c2 > 1 {
		c2 = 1
	} else if c2 < -1 {
		c2 = -1
	}
	s2 := math.Sqrt(1 - c2*c2)
	beta := geom.Angle(-math.Atan2(s2, c2))

	if d2 < singular {
		return Joints{}, ErrSingular
	}

	k1 := ar.L1 + ar.L2*c2
	k2 := ar.L2 * s2
	c1 := (k1*wx - k2*wy) / d2
	s1 := (k1*wy + k2*wx) / d2
	alpha := geom.Angle(math.Atan2(s1, c1))

	gamma := phi - (alpha + beta)

	// The checks above keep every operand in domain, so this only
	// trips on inputs that were already non-finite.
	for _, a := range []geom.Angle{alpha, beta, gamma} {
		if f := float64(a); math.IsNaN(f) || math.IsInf(f, 0) {
			return Joints{}, fmt.Errorf("%w: non-finite joint angle", ErrNoSolution)
		}
	}
	return Joints{Alpha: alpha, Beta: beta, Gamma: gamma}, nil
}
