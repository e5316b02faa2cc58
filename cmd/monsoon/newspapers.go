package main

import "github.com/AIDMI-DataHub/monsoon-news-extraction/collect"

// regionalNewspapers maps region slugs to the major local dailies whose
// sitemaps are checked during collection. A built-in subset of the full
// statewise newspaper list; regions without an entry rely on feed
// queries alone.
var regionalNewspapers = map[string][]collect.Newspaper{
	"andhra-pradesh": {
		{Name: "Eenadu", Website: "https://www.eenadu.net", Language: "te"},
	},
	"assam": {
		{Name: "Asomiya Pratidin", Website: "https://www.asomiyapratidin.in", Language: "as"},
	},
	"bihar": {
		{Name: "Dainik Jagran", Website: "https://www.jagran.com", Language: "hi"},
	},
	"gujarat": {
		{Name: "Gujarat Samachar", Website: "https://www.gujaratsamachar.com", Language: "gu"},
	},
	"karnataka": {
		{Name: "Prajavani", Website: "https://www.prajavani.net", Language: "kn"},
	},
	"kerala": {
		{Name: "Mathrubhumi", Website: "https://www.mathrubhumi.com", Language: "ml"},
		{Name: "Malayala Manorama", Website: "https://www.manoramaonline.com", Language: "ml"},
	},
	"madhya-pradesh": {
		{Name: "Dainik Bhaskar", Website: "https://www.bhaskar.com", Language: "hi"},
	},
	"maharashtra": {
		{Name: "Lokmat", Website: "https://www.lokmat.com", Language: "mr"},
	},
	"odisha": {
		{Name: "Dharitri", Website: "https://www.dharitri.com", Language: "or"},
	},
	"punjab": {
		{Name: "Ajit", Website: "https://www.ajitjalandhar.com", Language: "pa"},
	},
	"tamil-nadu": {
		{Name: "Dinamalar", Website: "https://www.dinamalar.com", Language: "ta"},
	},
	"telangana": {
		{Name: "Eenadu", Website: "https://www.eenadu.net", Language: "te"},
	},
	"west-bengal": {
		{Name: "Anandabazar Patrika", Website: "https://www.anandabazar.com", Language: "bn"},
	},
}
