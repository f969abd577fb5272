package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/matcha/internal/client/modal"
	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// ShowProfile prints a profile by id. Without an id it shows the
// current account's own profile.
func (a *App) ShowProfile(ctx context.Context, id string) error {
	if !a.requireAuth() {
		return nil
	}

	if id == "" {
		id = a.root.Session.Snapshot().User.ID
	}

	p, err := a.profileService.Get(ctx, id)
	if err != nil {
		renderError(err)
		return err
	}

	printlnFn(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
	if p.Age > 0 {
		printlnFn(fmt.Sprintf("Age: %d", p.Age))
	}
	if p.Location != "" {
		printlnFn("Location: " + p.Location)
	}
	if p.Gender != "" {
		printlnFn("Gender: " + string(p.Gender))
	}
	printlnFn("Looking for: " + string(p.SexualPreference))
	if p.Biography != "" {
		printlnFn("Bio: " + p.Biography)
	}
	if len(p.Interests) > 0 {
		printlnFn("Interests: " + strings.Join(p.Interests, ", "))
	}
	printlnFn(fmt.Sprintf("Fame rating: %d", p.FameRating))
	return nil
}

// EditProfile prompts for profile fields and saves the ones that were
// given; empty answers leave the corresponding field untouched. The
// interests prompt runs under its own dialog, mirroring how a graphical
// client raises the interest picker as an overlay.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	values := models.ProfileFormValues{}

	first, err := getSimpleText(a.reader, "First name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if first != "" {
		values.FirstName = &first
	}

	last, err := getSimpleText(a.reader, "Last name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if last != "" {
		values.LastName = &last
	}

	gender, err := getSimpleText(a.reader, "Gender (Male | Female, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if gender != "" {
		g := models.Gender(gender)
		if g != models.GenderMale && g != models.GenderFemale {
			renderMessages([]string{"Gender is not valid"})
			return nil
		}
		values.Gender = &g
	}

	pref, err := getSimpleText(a.reader, "Looking for (Male | Female | Both, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if pref != "" {
		p := models.SexualPreference(pref)
		if p != models.PreferenceMale && p != models.PreferenceFemale && p != models.PreferenceBoth {
			renderMessages([]string{"Sexual preference is not valid"})
			return nil
		}
		values.SexualPreference = &p
	}

	bio, err := GetMultiline(a.reader, "Biography (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if bio != "" {
		values.Biography = &bio
	}

	a.root.Modals.Open(modal.ProfileImage)
	imgLine, err := getSimpleText(a.reader, "Image URLs (comma separated, empty to keep)", os.Stdout)
	a.root.Modals.Close(modal.ProfileImage)
	if err != nil {
		return err
	}
	if imgLine != "" {
		var images []string
		for _, img := range strings.Split(imgLine, ",") {
			if img = strings.TrimSpace(img); img != "" {
				images = append(images, img)
			}
		}
		values.Images = &images
	}

	a.root.Modals.Open(modal.ProfileInterests)
	tagLine, err := getSimpleText(a.reader, "Interests (comma separated, empty to keep)", os.Stdout)
	a.root.Modals.Close(modal.ProfileInterests)
	if err != nil {
		return err
	}
	if tagLine != "" {
		var tags []string
		for _, tag := range strings.Split(tagLine, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		values.Interests = &tags
	}

	p, err := a.profileService.Update(ctx, values)
	if err != nil {
		renderError(err)
		return err
	}

	printlnFn("Profile saved: " + p.FirstName + " " + p.LastName)
	return nil
}
