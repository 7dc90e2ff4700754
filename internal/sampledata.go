package internal

// Bundled catalog data served when the backend is unreachable.
// The lists mirror the hosted seed rows so the app stays browsable offline.

// SampleFeaturedCharacters is the fallback for the "featured" category
var SampleFeaturedCharacters = []Character{
	{
		ID:          "7f1f2a66-1a14-4c4e-9a01-3a1f0d2c9b01",
		Name:        "萧晗晗",
		Avatar:      "https://images.aichat.app/characters/xiaohanhan.jpg",
		Popularity:  482000,
		Tags:        []string{"风流", "潇洒", "任性", "狮子座"},
		Description: "京圈里绯闻甚多，经常出没于娱乐场所，直到有一次去酒吧，遇到了酒吧打工的你，彼此的羁绊开始了",
		Gender:      "female",
		Category:    "featured",
	},
	{
		ID:          "7f1f2a66-1a14-4c4e-9a01-3a1f0d2c9b02",
		Name:        "初空",
		Avatar:      "https://images.aichat.app/characters/chukong.jpg",
		Popularity:  478000,
		Tags:        []string{"痞坏", "不羁", "暗黑", "双子座"},
		Description: "大三在读生，是你现任男友的亲弟弟，常年戴着黑色耳钉和银色吊坠。在你面前毫不掩饰本性，笑里总带着一丝邪气。",
		Gender:      "male",
		Category:    "featured",
	},
	{
		ID:          "7f1f2a66-1a14-4c4e-9a01-3a1f0d2c9b03",
		Name:        "多多",
		Avatar:      "https://images.aichat.app/characters/duoduo.jpg",
		Popularity:  465000,
		Tags:        []string{"可爱", "娇小", "萝莉", "处女座"},
		Description: "多多，长相可爱，很爱撒娇。你是她暗恋的人，多多经常会约你一起散步回家。",
		Gender:      "female",
		Category:    "featured",
	},
}

// SamplePrivateCharacters is the fallback for the "private" category
var SamplePrivateCharacters = []Character{
	{
		ID:          "7f1f2a66-1a14-4c4e-9a01-3a1f0d2c9b10",
		Name:        "Private Character 1",
		Avatar:      "https://images.aichat.app/characters/private1.jpg",
		Popularity:  10000,
		Tags:        []string{"Private", "Exclusive"},
		Description: "This is your private character",
		Gender:      "female",
		Category:    "private",
	},
}

// SampleStories is the fallback story list
var SampleStories = []Story{
	{
		ID:            "9c3e5b20-6d2f-4f67-8b11-5c2e0d3f9a01",
		Title:         "与总裁分手后",
		Cover:         "https://images.aichat.app/stories/ceo.jpg",
		Popularity:    78000,
		Description:   "你追他又甩了他，他说不会放过你。",
		Category:      "story",
		CharacterName: "卓文尧",
		Gender:        "male",
	},
	{
		ID:            "9c3e5b20-6d2f-4f67-8b11-5c2e0d3f9a02",
		Title:         "我成了当红明星的经纪",
		Cover:         "https://images.aichat.app/stories/star.jpg",
		Popularity:    61000,
		Description:   "绯闻不断，通告不停，这个毒舌又傲娇的大明星，",
		Category:      "story",
		CharacterName: "裴一",
		Gender:        "male",
	},
	{
		ID:            "9c3e5b20-6d2f-4f67-8b11-5c2e0d3f9a03",
		Title:         "网恋对象竟是我老板",
		Cover:         "https://images.aichat.app/stories/boss.jpg",
		Popularity:    53000,
		Description:   "好消息：网恋了。坏消息：网恋对象是老板。",
		Category:      "story",
		CharacterName: "道明寺",
		Gender:        "male",
	},
	{
		ID:            "9c3e5b20-6d2f-4f67-8b11-5c2e0d3f9a04",
		Title:         "前任又作妖",
		Cover:         "https://images.aichat.app/stories/ex.jpg",
		Popularity:    47000,
		Description:   "失业卖炸串，却被前任盯上了。",
		Category:      "story",
		CharacterName: "林嘉豪",
		Gender:        "male",
	},
}
