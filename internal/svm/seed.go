package svm

// SeedStudents returns the fixed sample records materialized when no valid
// document exists. The data is stable across runs so a fresh installation
// always starts from the same collection.
func SeedStudents() []Student {
	return []Student{
		{
			ID:        "SV001",
			Name:      "Nguyễn Văn An",
			BirthDate: "15/03/1995",
			Hometown:  "Hà Nội",
			Parish:    "Gx Thánh Giuse",
			Diocese:   "Gp Hà Nội",
		},
		{
			ID:        "SV002",
			Name:      "Trần Thành Bình",
			BirthDate: "22/07/1996",
			Hometown:  "TP.HCM",
			Parish:    "Gx Đức Bà",
			Diocese:   "Gp TP.HCM",
		},
		{
			ID:        "SV003",
			Name:      "Lê Minh Cường",
			BirthDate: "08/11/1994",
			Hometown:  "Đà Nẵng",
			Parish:    "Gx Chính Tòa",
			Diocese:   "Gp Đà Nẵng",
		},
		{
			ID:        "SV004",
			Name:      "Phạm Quang Dũng",
			BirthDate: "03/12/1997",
			Hometown:  "Hải Phòng",
			Parish:    "Gx Thánh Tâm",
			Diocese:   "Gp Hải Phòng",
		},
		{
			ID:        "SV005",
			Name:      "Hoàng Văn Em",
			BirthDate: "28/05/1995",
			Hometown:  "Huế",
			Parish:    "Gx Phú Cam",
			Diocese:   "Gp Huế",
		},
		{
			ID:        "SV006",
			Name:      "Vũ Thành Phúc",
			BirthDate: "14/09/1996",
			Hometown:  "Nam Định",
			Parish:    "Gx Thánh Phêrô",
			Diocese:   "Gp Bùi Chu",
		},
		{
			ID:        "SV007",
			Name:      "Đặng Minh Quang",
			BirthDate: "07/01/1998",
			Hometown:  "Nghệ An",
			Parish:    "Gx Kim Liên",
			Diocese:   "Gp Vinh",
		},
		{
			ID:        "SV008",
			Name:      "Bùi Văn Hùng",
			BirthDate: "19/04/1995",
			Hometown:  "Thái Bình",
			Parish:    "Gx Kẻ Sặt",
			Diocese:   "Gp Hải Phòng",
		},
		{
			ID:        "SV009",
			Name:      "Đinh Công Minh",
			BirthDate: "26/10/1997",
			Hometown:  "Quảng Ninh",
			Parish:    "Gx Cửa Ông",
			Diocese:   "Gp Hà Nội",
		},
		{
			ID:        "SV010",
			Name:      "Ngô Thành Nam",
			BirthDate: "12/06/1996",
			Hometown:  "Cần Thơ",
			Parish:    "Gx Chính Tòa",
			Diocese:   "Gp Cần Thơ",
		},
	}
}
