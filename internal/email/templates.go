package email

import "fmt"

// Inline template. The substituted values are internal ids, never user input.
const paymentConfirmationTemplate = `
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Payment confirmed</h2>
    <p>We have received the payment for your booking <b>%s</b>.</p>
    <p>Payment reference: %s</p>
    <p>Thank you for choosing Ruandri Care.</p>
  </body>
</html>`

func renderPaymentConfirmation(bookingID, orderID string) string {
	return fmt.Sprintf(paymentConfirmationTemplate, bookingID, orderID)
}
