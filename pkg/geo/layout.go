package geo

type CampusSpec struct {
	Code string `mapstructure:"code" validate:"required"`
	Name string `mapstructure:"name"`
}

type ShuttleSpec struct {
	From    string  `mapstructure:"from" validate:"required"`
	To      string  `mapstructure:"to" validate:"required"`
	Minutes float64 `mapstructure:"minutes" validate:"gte=0"`
}

type BuildingSpec struct {
	Code      string  `mapstructure:"code" validate:"required"`
	Name      string  `mapstructure:"name"`
	Kind      string  `mapstructure:"kind" validate:"oneof=teaching hall dormitory"`
	Campus    string  `mapstructure:"campus" validate:"required"`
	Longitude float64 `mapstructure:"longitude" validate:"gte=-180,lte=180"`
	Latitude  float64 `mapstructure:"latitude" validate:"gte=-90,lte=90"`
}

// Layout is the static description of a university's campuses and buildings
type Layout struct {
	Campuses  []CampusSpec   `mapstructure:"campuses" validate:"min=1,dive"`
	Shuttles  []ShuttleSpec  `mapstructure:"shuttles" validate:"dive"`
	Buildings []BuildingSpec `mapstructure:"buildings" validate:"min=1,dive"`
}

// DefaultLayout describes Fudan University. Shuttle minutes come from map services, coordinates are building entrances.
func DefaultLayout() Layout {
	building := func(code, name, kind string, longitude, latitude float64) BuildingSpec {
		return BuildingSpec{Code: code, Name: name, Kind: kind, Campus: code[:1], Longitude: longitude, Latitude: latitude}
	}

	return Layout{
		Campuses: []CampusSpec{
			{Code: "H", Name: "邯郸校区"},
			{Code: "J", Name: "江湾校区"},
			{Code: "F", Name: "枫林校区"},
			{Code: "Z", Name: "张江校区"},
		},
		Shuttles: []ShuttleSpec{
			{From: "H", To: "J", Minutes: 17},
			{From: "J", To: "H", Minutes: 14},
			{From: "H", To: "F", Minutes: 34},
			{From: "F", To: "H", Minutes: 39},
			{From: "H", To: "Z", Minutes: 27},
			{From: "Z", To: "H", Minutes: 32},
			{From: "J", To: "F", Minutes: 40},
			{From: "F", To: "J", Minutes: 41},
			{From: "J", To: "Z", Minutes: 33},
			{From: "Z", To: "J", Minutes: 39},
			{From: "F", To: "Z", Minutes: 30},
			{From: "Z", To: "F", Minutes: 32},
		},
		Buildings: []BuildingSpec{
			// Dining halls
			building("H本部食堂", "复旦大学邯郸校区本部食堂旦苑餐厅", "hall", 121.50631, 31.30085),
			building("H北区食堂", "复旦大学邯郸校区北区食堂", "hall", 121.49720, 31.30110),
			building("H南区食堂", "复旦大学邯郸校区南区餐厅", "hall", 121.50027, 31.29203),
			building("H教工食堂", "复旦大学邯郸校区教工食堂", "hall", 121.50490, 31.29480),
			building("J食堂", "复旦大学江湾校区食堂", "hall", 121.50385, 31.33589),
			building("Z食堂", "复旦大学张江校区学生餐厅", "hall", 121.59685, 31.18928),
			building("F食堂", "复旦大学上海医学院西17号楼", "hall", 121.4493, 31.1951),
			building("F清真", "复旦大学上海医学院枫林路校区西区清真餐厅", "hall", 121.45012, 31.19726),

			// Teaching buildings
			building("H1", "复旦大学邯郸校区第一教学楼", "teaching", 121.50182, 31.29732),
			building("H2", "复旦大学邯郸校区第二教学楼", "teaching", 121.50452, 31.29778),
			building("H3", "复旦大学邯郸校区第三教学楼", "teaching", 121.50442, 31.29808),
			building("H4", "复旦大学邯郸校区第四教学楼", "teaching", 121.50165, 31.29847),
			building("H5", "复旦大学邯郸校区第五教学楼", "teaching", 121.50473, 31.29543),
			building("H6", "复旦大学邯郸校区第六教学楼", "teaching", 121.5044, 31.2949),
			building("HGX", "复旦大学邯郸校区光华楼西辅楼", "teaching", 121.50430, 31.29981),
			building("H逸夫楼", "复旦大学邯郸校区逸夫楼", "teaching", 121.50166, 31.29919),
			building("H元·创中心", "复旦大学邯郸校区元·创中心", "teaching", 121.5048, 31.3006),
			building("H北区会馆", "复旦大学邯郸校区北区体育场", "teaching", 121.49598, 31.30078),
			building("H数值模拟实验室-光学楼B", "复旦大学邯郸校区兴业光学楼", "teaching", 121.50128, 31.29768),
			building("H杨咏曼楼", "复旦大学邯郸校区东区艺术教育中心", "teaching", 121.50852, 31.30105),
			building("H南区篮球场", "复旦大学邯郸校区南区篮球场", "teaching", 121.50204, 31.29054),
			building("H南区健身房", "复旦大学邯郸校区南区健身房", "teaching", 121.50204, 31.29235),
			building("H院系自主", "复旦大学邯郸校区院系自主", "teaching", 121.50365, 31.29755),
			building("JA", "复旦大学江湾校区教学楼A号楼", "teaching", 121.5054, 31.33632),
			building("Z2", "复旦大学张江校区2号教学楼", "teaching", 121.5984, 31.1912),
			building("F1", "复旦大学上海医学院第1教学楼", "teaching", 121.4488, 31.19535),
			building("F2", "复旦大学上海医学院第2教学楼", "teaching", 121.4485, 31.1955),
			building("F枫林综合游泳馆地下篮球场", "复旦大学上海医学院综合游泳馆", "teaching", 121.4510, 31.19575),

			// Dormitories
			building("H南区9", "复旦大学邯郸校区南区学生公寓9号", "dormitory", 121.50037, 31.29136),
		},
	}
}
