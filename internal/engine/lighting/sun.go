package lighting

import (
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// SunDirection converts longitude/latitude angles in degrees to a light
// direction vector. Longitude is rotation around Y, latitude is elevation
// from the horizon. Returns a unit vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := longitude * math32.Pi / 180
	latRad := latitude * math32.Pi / 180

	sinLat, cosLat := math32.Sincos(latRad)
	sinLon, cosLon := math32.Sincos(lonRad)
	return math.V3(cosLat*sinLon, sinLat, cosLat*cosLon)
}

// SunLight returns a directional light shining from the sun position
// towards the scene.
func SunLight(id int, longitude, latitude float32, color math.Vec4) scene.Light {
	d := SunDirection(longitude, latitude).Neg()
	return scene.Light{
		ID:        id,
		Type:      scene.DirectionalLight,
		Color:     color,
		Function:  math.V3(1, 0, 0),
		Direction: d.Vec4(0),
	}
}
