// Program armsim prints the pose of a planar three axis robot arm
// for a triple of joint angles: the chain points, the tip
// orientation and the reach. It is the command line counterpart of a
// slider driven arm simulator readout.
package main

import (
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
	Name:  "armsim",
	Usage: "print the pose of a planar three axis arm for a triple of joint angles",
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
			Name:  "alpha",
			Usage: "first joint angle (degrees)",
		},
		&cli.Float64Flag{
			Name:  "beta",
			Usage: "second joint angle, relative to link 1 (degrees)",
		},
		&cli.Float64Flag{
			Name:  "gamma",
			Usage: "third joint angle, relative to link 2 (degrees)",
		},
	},
	Action: func(c *cli.Context) error {
		ar, err := triaxis.NewArm(geom.V(c.Float64("x0"), c.Float64("y0"), 0), c.Float64("l1"), c.Float64("l2"), c.Float64("l3"))
		if err != nil {
			return fmt.Errorf("invalid arm geometry: %w", err)
		}
		p := ar.Forward(triaxis.Joints{
			Alpha: geom.Degrees(c.Float64("alpha")),
			Beta:  geom.Degrees(c.Float64("beta")),
			Gamma: geom.Degrees(c.Float64("gamma")),
		})
		names := []string{"base", "joint 1", "joint 2", "tip"}
		for i, pt := range p.Points() {
			fmt.Printf("%-8s (%7.2f, %7.2f)\n", names[i], pt[0], pt[1])
		}
		fmt.Printf("orientation %.1f deg\n", deg(p.Phi))
		fmt.Printf("reach %.2f of %.2f max\n", p.Reach, ar.MaxReach())
		return nil
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
