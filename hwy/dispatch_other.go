//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures have no detected vector unit; lane operations run
	// on the Scalar target.
	currentLevel = DispatchScalar
}
