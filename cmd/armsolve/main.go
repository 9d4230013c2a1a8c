// Program armsolve computes the joint angles that place a planar
// three axis robot arm tip at a target position and orientation, and
// verifies the answer by running it back through the forward
// kinematics. Unreachable targets are reported with the computed
// wrist distance and the reach bound it violated.
package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/urfave/cli/v2"

	"zappem.net/pub/kinematics/triaxis"
	"zappem.net/pub/math/geom"
)

// deg converts an angle to degrees for display.
func deg(a geom.Angle) float64 {
	return a.Rad() * 180 / math.Pi
}

var app = &cli.App{
	Name:  "armsolve",
	Usage: "solve the joint angles that reach a target tip position and orientation",
	Flags: []cli.Flag{
		&cli.Float64Flag{
			Name:  "x0",
			Usage: "base x coordinate (cm)",
		},
		&cli.Float64Flag{
			Name:  "y0",
			Usage: "base y coordinate (cm)",
		},
		&cli.Float64Flag{
			Name:  "l1",
			Value: 12,
			Usage: "first link length (cm)",
		},
		&cli.Float64Flag{
			Name:  "l2",
			Value: 12,
			Usage: "second link length (cm)",
		},
		&cli.Float64Flag{
			Name:  "l3",
			Value: 12,
			Usage: "third link length (cm)",
		},
		&cli.Float64Flag{
			Name:  "x",
			Value: 20,
			Usage: "target x coordinate for the tip (cm)",
		},
		&cli.Float64Flag{
			Name:  "y",
			Value: 15,
			Usage: "target y coordinate for the tip (cm)",
		},
		&cli.Float64Flag{
			Name:  "phi",
			Value: -25,
			Usage: "target tip orientation (degrees)",
		},
	},
	Action: func(c *cli.Context) error {
		ar, err := triaxis.NewArm(geom.V(c.Float64("x0"), c.Float64("y0"), 0), c.Float64("l1"), c.Float64("l2"), c.Float64("l3"))
		if err != nil {
			return fmt.Errorf("invalid arm geometry: %w", err)
		}
		j, err := ar.Inverse(geom.V(c.Float64("x"), c.Float64("y"), 0), geom.Degrees(c.Float64("phi")))
		var re *triaxis.ReachError
		switch {
		case errors.As(err, &re):
			return fmt.Errorf("target unreachable: %w (workspace %.2f..%.2f)", re, ar.MinReach(), ar.MaxReach())
		case err != nil:
			return fmt.Errorf("no solution: %w", err)
		}
		fmt.Printf("alpha %8.2f deg\n", deg(j.Alpha))
		fmt.Printf("beta  %8.2f deg\n", deg(j.Beta))
		fmt.Printf("gamma %8.2f deg\n", deg(j.Gamma))
		p := ar.Forward(j)
		fmt.Printf("tip reaches (%.2f, %.2f) at %.1f deg\n", p.Tip[0], p.Tip[1], deg(p.Phi))
		return nil
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
