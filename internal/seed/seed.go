package seed

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
	"github.com/sysu-ecnc-dev/ga-lab/internal/repository"
	"github.com/sysu-ecnc-dev/ga-lab/internal/utils"
)

// Options 随机数据集的规模
type Options struct {
	Students    int // 学生人数，同时也是所有导师容量之和
	Supervisors int
	Prefs       int // 每个学生填写的志愿数量
}

func (o Options) Validate() error {
	if o.Students <= 0 {
		return fmt.Errorf("学生人数必须 > 0（得到 %d）", o.Students)
	}
	if o.Supervisors <= 0 {
		return fmt.Errorf("导师人数必须 > 0（得到 %d）", o.Supervisors)
	}
	if o.Prefs <= 0 || o.Prefs > o.Supervisors {
		return fmt.Errorf("志愿数量必须在 [1, %d] 之间（得到 %d）", o.Supervisors, o.Prefs)
	}
	return nil
}

// SeedRandomDataSet 生成容量之和恰好等于学生人数的随机数据集，并写入配置中的两个 csv 文件
func SeedRandomDataSet(r *repository.Repository, rng *rand.Rand, opts Options) ([]*domain.Student, []*domain.Supervisor, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	supervisors := utils.GenerateRandomCapacities(rng, opts.Supervisors, opts.Students)
	students := utils.GenerateRandomStudents(rng, opts.Students, supervisors, opts.Prefs)

	// 正常情况下不会失败，写出之前再确认一次
	if err := utils.ValidateCapacity(students, supervisors); err != nil {
		return nil, nil, err
	}

	if err := r.SaveSupervisors(supervisors); err != nil {
		return nil, nil, err
	}
	slog.Info("已写入导师数据", "count", len(supervisors))

	if err := r.SaveStudents(students); err != nil {
		return nil, nil, err
	}
	slog.Info("已写入学生数据", "count", len(students))

	return students, supervisors, nil
}
