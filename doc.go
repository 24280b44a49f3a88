/*
Package proj4rs provides an interface to the proj4rs cartographic
projection engine [cartography].

See: https://github.com/3liz/proj4rs

Projections are built from proj-strings and combined into a Transform,
which reprojects coordinates supplied as scalars, slices, gonum vectors,
or a single interleaved N x 2 or N x 3 matrix. The result always has the
same shape as the input:

	trans, err := proj4rs.NewTransformDef(
		"WGS84",
		"+proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80",
	)
	if err != nil {
		log.Fatal(err)
	}
	x, y, _, err := trans.Transform(15.4213696, 47.0766716, nil)

Requires libproj4rs.
*/
package proj4rs
