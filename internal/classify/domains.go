package classify

// editorialDomains are outlets whose business is reviewed, dated content.
// A fresher page from one of these is a direct competitive loss.
var editorialDomains = []string{
	"cnet.com",
	"zdnet.com",
	"techradar.com",
	"tomsguide.com",
	"tomshardware.com",
	"theverge.com",
	"wired.com",
	"engadget.com",
	"pcmag.com",
	"pcworld.com",
	"digitaltrends.com",
	"androidauthority.com",
	"androidcentral.com",
	"arstechnica.com",
	"gizmodo.com",
	"lifewire.com",
	"rtings.com",
	"wirecutter.com",
	"nytimes.com",
	"theguardian.com",
	"forbes.com",
	"usatoday.com",
	"businessinsider.com",
	"cnn.com",
	"bbc.com",
	"bbc.co.uk",
}

// platformDomains host user-generated or reference content; their update
// stamps reflect platform activity, not editorial effort.
var platformDomains = []string{
	"youtube.com",
	"reddit.com",
	"wikipedia.org",
	"quora.com",
	"medium.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"tiktok.com",
	"pinterest.com",
	"linkedin.com",
	"stackexchange.com",
	"stackoverflow.com",
}

// retailerDomains are storefronts; their pages re-stamp on price and stock
// changes that say nothing about content freshness.
var retailerDomains = []string{
	"amazon.com",
	"bestbuy.com",
	"walmart.com",
	"target.com",
	"ebay.com",
	"newegg.com",
	"costco.com",
	"homedepot.com",
	"etsy.com",
	"aliexpress.com",
	"bhphotovideo.com",
}

// editorialHostTokens are host labels that mark a publication when the
// domain itself is unlisted.
var editorialHostTokens = []string{
	"news",
	"blog",
	"magazine",
	"review",
	"reviews",
}
