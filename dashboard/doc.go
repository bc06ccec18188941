// Package dashboard provides a client for the dashboard analytics endpoint.
//
// A single call returns up to six aggregates in one envelope: recent recalls, recalls by
// manufacturer, most recalled vehicles, recalls by year, crash test performance and
// rollover resistance. Sizes of the first three are controlled by AnalyticsParams.
//
//	client, err := dashboard.NewClient("http://localhost:5276", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.GetAnalytics(ctx, dashboard.DefaultAnalyticsParams())
package dashboard
