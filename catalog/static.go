package catalog

// Known files on the static media host. There is no directory listing
// API in front of them, so additions mean appending to these lists.
// TODO: generate these lists from the asset folders at build time.

var KnownImageFiles = []string{
	"2019air.jpeg", "2020hood.mp4", "35cents.jpg", "36.jpg",
	"aicouldnever.jpeg", "batbite.jpeg", "beyblades1.jpeg", "beyblades2.jpeg",
	"brotext.jpeg", "brotext2.jpeg", "canadagangs.jpeg", "childhood1.jpeg",
	"childhood2.jpeg", "curtains.jpeg", "diabetes.jpeg", "disneyland.jpeg",
	"fingerrock.jpeg", "fingerrock2.jpeg", "foodgood.jpeg", "friendship.jpeg",
	"girlsflirt.jpeg", "goodbye.jpeg", "hedgehogno.jpeg", "looklikethis1.jpeg",
	"looklikethis2.jpeg", "mainquest.jpeg", "meatbeach.jpeg", "nosmoking.jpeg",
	"payrent.jpeg", "pigeonbot.jpeg", "pikachu.jpeg", "rapszn1.jpeg",
	"scoobycall.jpeg", "semitruck.jpeg", "sleep1.jpeg", "sleep2.jpeg",
	"sleep3.jpeg", "sleep4.jpeg", "smallaccounts.jpeg", "spritecroc.jpeg",
	"stroker.jpeg", "tookthispic.jpeg", "vegetable.jpeg", "walkitoff.jpeg",
}

var KnownGifFiles = []string{
	"gifs/_00_240x320_010_reasonably_small.gif", "gifs/aaoa.gif",
	"gifs/amalaprint-cat.gif", "gifs/anime-girl-blush-cat.gif",
	"gifs/balls-218.gif", "gifs/batman-cat.gif", "gifs/bear.gif",
	"gifs/bingus-dynamite.gif", "gifs/bongo-cat-pumpkin-bongo.gif",
	"gifs/boom.gif", "gifs/bro-got-little-turbulence-plane.gif",
	"gifs/caseoh-ai.gif", "gifs/cat-car.gif",
}
