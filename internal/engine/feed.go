package engine

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-fiveoclock/internal/config"
)

// BuildFeed renders a resolution result as an iCalendar feed: one event
// spanning the UTC hour window the result was computed in, with the country
// list in the description. Subscribing clients get a rolling "happy hour"
// calendar that updates on every refresh.
func BuildFeed(res Result, opts Options) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval matching the hourly cycle.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultFeedRefresh)
	cal.Props.Set(refreshProp)

	windowStart := res.ComputedAtUTC.Truncate(time.Hour)
	windowEnd := windowStart.Add(time.Hour)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatFeedUID,
		windowStart.Format(config.FeedUIDTimeLayout), config.ICalDomain))
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatFeedSummary,
		opts.TargetHour, len(res.Countries)))

	body := config.FeedEmptyBody
	if len(res.Countries) > 0 {
		body = strings.Join(res.Countries, config.FeedListSeparator)
	}
	event.Props.SetText(config.PropDescription, body)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(res.ComputedAtUTC)
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDateTime(windowStart)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDateTime(windowEnd)
	event.Props.Set(dtEnd)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
