// @title           Ruandri payments API
// @version         1.0
// @description     Razorpay order creation, payment verification and webhook reconciliation for the Ruandri booking app.
// @host            localhost:4000
// @BasePath        /

package main

import "ruandri_backend/internal/app"

func main() {
	app.Run()
}
