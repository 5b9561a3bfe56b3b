package seed

import (
	"time"

	"github.com/deppfellow/game-reviews/internal/model"
)

func str(s string) *string { return &s }

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	imgWerewolf = "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700"
	imgDefault  = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"
	lorem       = "Consequat velit occaecat voluptate do. Dolor pariatur fugiat sint et proident ex do consequat est. Nisi minim laboris mollit cupidatat et adipisicing laborum do."
)

// TestData is the fixture set the tests are written against:
//
//   - 4 categories, 4 users
//   - 13 reviews, 11 of them "social deduction", none "children's games"
//   - reviews 2 and 3 have 3 comments each, review 1 has none
func TestData() Data {
	return Data{
		Categories: []model.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: []model.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: str("https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg")},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: str("https://avatars2.githubusercontent.com/u/24604688?s=460&v=4")},
			{Username: "bainesface", Name: "sarah", AvatarURL: str("https://avatars2.githubusercontent.com/u/24394918?s=400&v=4")},
			{Username: "dav3rid", Name: "dave", AvatarURL: str("https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png")},
		},
		Reviews: []model.Review{
			{
				Title: "Agricola", Designer: str("Uwe Rosenberg"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "Farmyard fun!", Category: "euro game",
				CreatedAt: at("2021-01-18T10:00:20Z"), Votes: 1,
			},
			{
				Title: "Jenga", Designer: str("Leslie Scott"), Owner: "philippaclaire9",
				ReviewImgURL: str(imgDefault), ReviewBody: "Fiddly fun for all the family", Category: "dexterity",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 5,
			},
			{
				Title: "Ultimate Werewolf", Designer: str("Akihisa Okui"), Owner: "bainesface",
				ReviewImgURL: str(imgWerewolf), ReviewBody: "We couldn't find the werewolf!", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 5,
			},
			{
				Title: "Dolor reprehenderit", Designer: str("Gamey McGameface"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: lorem, Category: "social deduction",
				CreatedAt: at("2021-01-22T11:35:50Z"), Votes: 7,
			},
			{
				Title: "Proident tempor et.", Designer: str("Seymour Buttz"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: lorem, Category: "social deduction",
				CreatedAt: at("2021-01-07T09:06:08Z"), Votes: 5,
			},
			{
				Title: "Occaecat consequat officia in quis commodo.", Designer: str("Ollie Tabooger"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: lorem, Category: "social deduction",
				CreatedAt: at("2020-09-13T14:19:28Z"), Votes: 8,
			},
			{
				Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: str("Avery Wunzboogerz"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: lorem, Category: "social deduction",
				CreatedAt: at("2021-01-25T11:16:54Z"), Votes: 9,
			},
			{
				Title: "One Night Ultimate Werewolf", Designer: str("Akihisa Okui"), Owner: "mallionaire",
				ReviewImgURL: str(imgWerewolf), ReviewBody: "We couldn't find the werewolf!", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 5,
			},
			{
				Title: "A truly Quacking Game; Quacks of Quedlinburg", Designer: str("Wolfgang Warsch"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "Ever wish you could try your hand at mixing potions?", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 10,
			},
			{
				Title: "Build you own tour de Yorkshire", Designer: str("Asger Harding Granerud"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "Cold rain pours on the faces of your team of cyclists.", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 10,
			},
			{
				Title: "That's just what an evil person would say!", Designer: str("Fiona Lohoar"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "If you've ever wanted to accuse your siblings of being heartless fiends.", Category: "social deduction",
				CreatedAt: at("2021-01-18T10:01:41Z"), Votes: 8,
			},
			{
				Title: "Scythe; you're gonna need a bigger table!", Designer: str("Jamey Stegmaier"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "Spend 30-45 minutes just setting up all of the pieces.", Category: "social deduction",
				CreatedAt: at("2021-01-22T10:37:04Z"), Votes: 100,
			},
			{
				Title: "Settlers of Catan: Don't Settle For Less", Designer: str("Klaus Teuber"), Owner: "mallionaire",
				ReviewImgURL: str(imgDefault), ReviewBody: "You have stumbled across an uncharted island rich in natural resources.", Category: "social deduction",
				CreatedAt: at("1970-01-10T02:08:38Z"), Votes: 16,
			},
		},
		Comments: []model.Comment{
			{Body: "I loved this game too!", ReviewID: 2, Author: "bainesface", Votes: 16, CreatedAt: at("2017-11-22T12:43:33Z")},
			{Body: "My dog loved this game too!", ReviewID: 3, Author: "mallionaire", Votes: 13, CreatedAt: at("2021-01-18T10:09:05Z")},
			{Body: "I didn't know dogs could play games", ReviewID: 3, Author: "philippaclaire9", Votes: 10, CreatedAt: at("2021-01-18T10:09:48Z")},
			{Body: "EPIC board game!", ReviewID: 2, Author: "bainesface", Votes: 16, CreatedAt: at("2017-11-22T12:36:03Z")},
			{Body: "Now this is a story all about how, board games turned my life upside down", ReviewID: 2, Author: "mallionaire", Votes: 13, CreatedAt: at("2021-01-18T10:24:05Z")},
			{Body: "Not sure about dogs, but my cat likes to get involved with board games", ReviewID: 3, Author: "philippaclaire9", Votes: 10, CreatedAt: at("2021-03-27T19:48:58Z")},
		},
	}
}
