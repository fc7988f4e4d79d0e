package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/binayakjoshi/furever-sub000/schema"
	"github.com/binayakjoshi/furever-sub000/utils"
)

// reminderLabels are the human labels rendered inside the email body and
// used as the subject fallback when no translation is available.
var reminderLabels = map[ReminderKind]string{
	ReminderKindWeekBefore:      "Due in 1 Week",
	ReminderKindThreeDaysBefore: "Due in 3 Days",
	ReminderKindOneDayBefore:    "Due Tomorrow",
	ReminderKindDueToday:        "Due Today",
}

func subjectFor(kind ReminderKind, petName string) string {
	subject, err := utils.Localize(fmt.Sprintf("reminder_subject_%s", kind), map[string]interface{}{
		"PetName": petName,
	})
	if err == nil {
		return subject
	}
	return fmt.Sprintf("Vaccination Reminder: %s for %s", reminderLabels[kind], petName)
}

func buildReminderEmail(pet schema.PetWithOwner, due []schema.Vaccination, kind ReminderKind, now time.Time) (subject, htmlContent string) {
	var items strings.Builder
	for _, vaccination := range due {
		fmt.Fprintf(&items, "<li>%s (due %s)</li>", vaccination.Name, vaccination.NextVaccDate.Format("Jan 2, 2006"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Hi %s,</h2>", pet.OwnerInfo.Name)
	fmt.Fprintf(&b, "<p>The following vaccinations for <strong>%s</strong> are <strong>%s</strong>:</p>",
		pet.Name, reminderLabels[kind])
	fmt.Fprintf(&b, "<ul>%s</ul>", items.String())
	fmt.Fprintf(&b, "<p>%s is a %s %s, %s old.</p>", pet.Name, pet.Breed, pet.PetType, AgeText(pet.DateOfBirth, now))
	b.WriteString("<p>Please schedule an appointment with your veterinarian.</p>")
	b.WriteString("<p>— The Furever Team</p>")

	return subjectFor(kind, pet.Name), b.String()
}

// AgeText renders a pet's age from its date of birth: months below one year,
// otherwise whole years with the month remainder appended when non-zero.
func AgeText(dateOfBirth, now time.Time) string {
	months := monthsBetween(dateOfBirth, now)
	if months < 0 {
		months = 0
	}

	if months < 12 {
		return fmt.Sprintf("%d %s", months, pluralize("month", months))
	}

	years := months / 12
	remainder := months % 12
	if remainder == 0 {
		return fmt.Sprintf("%d %s", years, pluralize("year", years))
	}
	return fmt.Sprintf("%d %s %d %s", years, pluralize("year", years), remainder, pluralize("month", remainder))
}

func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
