/*
Package heightbrush implements the pixel level brush operations used to paint
heightmaps and terrain splat maps: sampling statistics over a region, stamping
a weighted brush onto a target image with additive or interpolated blending,
and generating a radial falloff brush.

Images are floating point RGBA grids. Heightmaps store the height in the red
channel, which is also the channel the brushes are sampled from.

Here is a simple example raising the terrain under a soft round brush:

	package main

	import (
		"fmt"

		"github.com/esimov/heightbrush"
		"golang.org/x/image/math/f32"
	)

	func main() {
		terrain := heightbrush.NewImage(512, 512)
		brush, _, err := heightbrush.NewRadialFalloffBrush(32)
		if err != nil {
			fmt.Printf("Error generating the brush: %s", err.Error())
			return
		}

		if err := heightbrush.AddChannel(terrain, brush, f32.Vec2{100, 100}, 0.1); err != nil {
			fmt.Printf("Error painting the terrain: %s", err.Error())
		}
	}

Every operation locks the images it touches for the duration of the call.
The locks are not reentrant and operations are not meant to be run
concurrently on the same image.
*/
package heightbrush
