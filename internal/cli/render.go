package cli

import (
	"fmt"
	"strings"

	"bidding-client/internal/bidflow"
	"bidding-client/internal/models"
)

// Render formats a page view as plain text
func Render(v bidflow.PageView) string {
	if !v.ItemLoaded {
		return "Loading item..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (#%d)\n", v.Item.Title, v.Item.ID)
	if v.Item.Description != "" {
		fmt.Fprintf(&b, "%s\n", v.Item.Description)
	}
	fmt.Fprintf(&b, "Starting bid: $%s\n", models.FormatAmount(v.Item.InitBid))

	switch {
	case v.HighestBid.ID == 0:
		b.WriteString("Highest bid: none yet\n")
	case v.LeadingIsOwn():
		fmt.Fprintf(&b, "Highest bid: $%s (yours)\n", models.FormatAmount(v.HighestBid.Amount))
	default:
		fmt.Fprintf(&b, "Highest bid: $%s\n", models.FormatAmount(v.HighestBid.Amount))
	}

	if own, ok := v.OwnBid.Get(); ok {
		fmt.Fprintf(&b, "Your bid: $%s\n", models.FormatAmount(own.Amount))
	}
	if v.CanBid() {
		fmt.Fprintf(&b, "Next bid: $%s\n", models.FormatAmount(v.Draft))
	}
	if v.BidError.Active {
		fmt.Fprintf(&b, "  ! %s\n", v.BidError.Text)
	}

	onOff := "off"
	if v.AutoBidding {
		onOff = "on"
	}
	fmt.Fprintf(&b, "Auto-bidding: %s, ceiling $%s\n", onOff, models.FormatAmount(v.Ceiling))
	if v.CeilingError.Active {
		fmt.Fprintf(&b, "  ! %s\n", v.CeilingError.Text)
	} else {
		fmt.Fprintf(&b, "  %s\n", v.CeilingError.Text)
	}

	b.WriteString(renderCountdown(v))
	return b.String()
}

func renderCountdown(v bidflow.PageView) string {
	c := v.Countdown
	switch {
	case c.Closed:
		return "Auction closed"
	case c.Pending:
		return "Ends in: --"
	default:
		return fmt.Sprintf("Ends in: %dd %dh %dm %ds", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
}
