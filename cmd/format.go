package cmd

import (
	"fmt"
	"strings"

	"github.com/s0up4200/safetydash/dashboard"
	"github.com/s0up4200/safetydash/schema"
)

const (
	branch     = "├── "
	lastBranch = "╰── "
	pipeIndent = "│   "
	lastIndent = "    "
)

// treePrefix returns the branch and child indent for item i of n
func treePrefix(i, n int) (string, string) {
	if i == n-1 {
		return lastBranch, lastIndent
	}
	return branch, pipeIndent
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// formatAnalytics renders the dashboard payload section by section
func formatAnalytics(a *dashboard.Analytics) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nRecent recalls (%d):\n\n", len(a.RecentRecalls))
	for i, r := range a.RecentRecalls {
		prefix, indent := treePrefix(i, len(a.RecentRecalls))
		fmt.Fprintf(&sb, "%s%s  %s\n", prefix, r.CampaignNumber, r.Subject)
		fmt.Fprintf(&sb, "%s%s | %s | received %s\n", indent, r.Manufacturer, r.Component, r.ReportReceivedDate)
		if r.PotentiallyAffected != "" {
			fmt.Fprintf(&sb, "%sPotentially affected: %s\n", indent, r.PotentiallyAffected)
		}
		if strings.EqualFold(r.DoNotDriveAdvisory, "yes") {
			fmt.Fprintf(&sb, "%s⚠ Do not drive\n", indent)
		}
		if strings.EqualFold(r.ParkOutsideAdvisory, "yes") {
			fmt.Fprintf(&sb, "%s⚠ Park outside\n", indent)
		}
	}

	if len(a.RecallsByManufacturer) > 0 {
		sb.WriteString("\nRecalls by manufacturer:\n\n")
		for _, m := range a.RecallsByManufacturer {
			fmt.Fprintf(&sb, "  %-40s %6d\n", m.Manufacturer, m.RecallCount)
		}
	}

	if len(a.MostRecalledVehicles) > 0 {
		sb.WriteString("\nMost recalled:\n\n")
		for _, v := range a.MostRecalledVehicles {
			fmt.Fprintf(&sb, "  %-40s %6d  %s\n", v.Manufacturer, v.RecallCount, v.IssueDescription)
		}
	}

	if len(a.RecallsByYear) > 0 {
		sb.WriteString("\nRecalls by year:\n\n")
		for _, y := range a.RecallsByYear {
			fmt.Fprintf(&sb, "  %d %6d\n", y.Year, y.Count)
		}
	}

	if len(a.CrashTestPerformance) > 0 {
		sb.WriteString("\nCrash test performance:\n\n")
		for _, c := range a.CrashTestPerformance {
			fmt.Fprintf(&sb, "  %-40s %d/%d passed (%.0f%%)\n", c.Manufacturer, c.PassedTests, c.TotalTests, c.PassRate*100)
		}
	}

	if len(a.RolloverResistanceData) > 0 {
		sb.WriteString("\nRollover resistance:\n\n")
		for _, r := range a.RolloverResistanceData {
			fmt.Fprintf(&sb, "  %-40s %8.0f lbs  %.2f\n", r.Manufacturer+" "+r.Model, r.Weight, r.RolloverResistance)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatSearch renders a page of search results with its navigation links
func formatSearch(meta *schema.Meta, results []schema.VehicleResult) string {
	if len(results) == 0 {
		return "No vehicles found\n"
	}

	var sb strings.Builder
	sb.WriteString("\nVehicle")
	if len(results) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(results))

	for i, v := range results {
		prefix, indent := treePrefix(i, len(results))
		fmt.Fprintf(&sb, "%s%s\n", prefix, v.DisplayName())
		fmt.Fprintf(&sb, "%s%s, %s, %s, %s\n", indent,
			plural(v.RecallsCount, "recall"),
			plural(v.ComplaintsCount, "complaint"),
			plural(v.InvestigationsCount, "investigation"),
			plural(v.ManufacturerCommunicationsCount, "communication"))

		var flags []string
		if v.ParkIt {
			flags = append(flags, "PARK IT")
		}
		if v.ParkOutSide {
			flags = append(flags, "PARK OUTSIDE")
		}
		if v.OverTheAirUpdate {
			flags = append(flags, "OTA")
		}
		if v.NcapRated {
			flags = append(flags, "NCAP rated")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&sb, "%s[%s]\n", indent, strings.Join(flags, "] ["))
		}
	}

	if meta != nil && meta.Pagination != nil {
		p := meta.Pagination
		fmt.Fprintf(&sb, "\nShowing %d-%d of %d\n", p.Offset+1, p.Offset+len(results), p.Total)
		if p.NextURL != nil {
			fmt.Fprintf(&sb, "Next:     %s\n", *p.NextURL)
		}
		if p.PreviousURL != nil {
			fmt.Fprintf(&sb, "Previous: %s\n", *p.PreviousURL)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatDetailed renders detailed vehicle results
func formatDetailed(results []schema.DetailedVehicleResult) string {
	if len(results) == 0 {
		return "No vehicles found\n"
	}

	var sb strings.Builder
	for _, d := range results {
		fmt.Fprintf(&sb, "\n%s\n", d.DisplayName())
		if d.Class != nil && *d.Class != "" {
			fmt.Fprintf(&sb, "Class: %s\n", *d.Class)
		}
		fmt.Fprintf(&sb, "Manufacturer: %s\n", d.Manufacturer)

		if r := d.SafetyRatings; r != nil {
			if len(r.CrashTestRatings) > 0 {
				sb.WriteString("\nCrash test ratings:\n")
				for i, c := range r.CrashTestRatings {
					prefix, indent := treePrefix(i, len(r.CrashTestRatings))
					fmt.Fprintf(&sb, "%s%s\n", prefix, c.Display)
					for _, detail := range c.Ratings {
						fmt.Fprintf(&sb, "%s%s: %s\n", indent, detail.Display, detail.Rating)
					}
				}
			}
			if len(r.SafetyFeatures) > 0 {
				sb.WriteString("\nSafety features:\n")
				for i, cat := range r.SafetyFeatures {
					prefix, indent := treePrefix(i, len(r.SafetyFeatures))
					fmt.Fprintf(&sb, "%s%s\n", prefix, cat.Category)
					for _, f := range cat.Features {
						fmt.Fprintf(&sb, "%s%s: %s\n", indent, f.Label, f.Value)
					}
				}
			}
		}

		if issues := d.SafetyIssues; issues != nil {
			if len(issues.Recalls) > 0 {
				sb.WriteString("\nRecalls:\n")
				for i, r := range issues.Recalls {
					prefix, indent := treePrefix(i, len(issues.Recalls))
					fmt.Fprintf(&sb, "%s%s  %s\n", prefix, r.NhtsaCampaignNumber, r.Subject)
					if r.ReportReceivedDate != "" {
						fmt.Fprintf(&sb, "%sReceived: %s\n", indent, r.ReportReceivedDate)
					}
				}
			}
			fmt.Fprintf(&sb, "\n%s, %s\n",
				plural(len(issues.Complaints), "complaint"),
				plural(len(issues.ManufacturerCommunications), "communication"))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}
